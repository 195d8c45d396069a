// Package app содержит основную структуру приложения и логику инициализации.
// Предоставляет точку входа для запуска HTTP сервера с настроенными маршрутами и middleware.
package app

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/InQaaaaGit/mjml_render.git/internal/buildinfo"
	"github.com/InQaaaaGit/mjml_render.git/internal/compiler"
	"github.com/InQaaaaGit/mjml_render.git/internal/config"
	"github.com/InQaaaaGit/mjml_render.git/internal/handler"
	"github.com/InQaaaaGit/mjml_render.git/internal/service"
)

// App представляет основное приложение сервиса рендеринга MJML.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config  *config.Config   // Конфигурация приложения
	router  *chi.Mux         // HTTP роутер для обработки запросов
	logger  *zap.Logger      // Логгер для записи событий приложения
	handler *handler.Handler // Обработчики HTTP запросов
}

// NewApp создает и инициализирует новый экземпляр приложения.
// Автоматически настраивает логгер, компилятор MJML, сервисный слой,
// обработчики запросов и маршруты.
//
// Параметры:
//   - cfg: конфигурация приложения с настройками сервера и окружения
//   - build: информация о сборке, отображаемая эндпоинтом /info
//
// Возвращает указатель на App или ошибку при неудачной инициализации зависимостей.
func NewApp(cfg *config.Config, build *buildinfo.Info) (*App, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	engine := compiler.NewMJMLEngine()
	renderService := service.NewRenderService(engine, cfg, logger)
	renderHandler := handler.NewHandler(renderService, cfg, logger, build)

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: renderHandler,
	}
	a.setupRoutes()

	return a, nil
}

// newLogger создает логгер с уровнем и пресетом из конфигурации.
// В режиме разработки используется человекочитаемый консольный вывод,
// в production - структурированный JSON.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error parsing log level %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	return logger, nil
}

// setupRoutes настраивает HTTP маршруты и middleware для приложения.
// Регистрирует все эндпоинты API и применяет глобальные middleware
// (идентификатор запроса, логирование, сжатие, перехват паник).
func (a *App) setupRoutes() {
	// Middleware
	a.router.Use(a.handler.WithRequestID)
	a.router.Use(a.handler.WithLogging)
	a.router.Use(a.handler.WithGzip)
	a.router.Use(a.handler.WithRecover)

	// Routes
	a.router.Get("/health", a.handler.HandleHealth)
	a.router.Get("/info", a.handler.HandleInfo)

	a.router.Group(func(r chi.Router) {
		r.Use(a.handler.WithRenderLimits)
		r.Post("/render", a.handler.HandleRender)
	})

	a.router.Group(func(r chi.Router) {
		r.Use(a.handler.WithBatchLimits)
		r.Use(a.handler.WithBatchGate)
		r.Post("/render-batch", a.handler.HandleRenderBatch)
	})

	// Неизвестные пути и методы получают единый JSON-ответ об ошибке
	a.router.NotFound(a.handler.HandleNotFound)
	a.router.MethodNotAllowed(a.handler.HandleNotFound)

	// Профилирование (доступно только в режиме разработки)
	if a.config.IsDevelopment() {
		a.router.Mount("/debug/pprof", http.DefaultServeMux)
	}
}

// Router возвращает HTTP роутер приложения с зарегистрированными маршрутами.
// Используется тестами и для встраивания приложения в существующий сервер.
func (a *App) Router() http.Handler {
	return a.router
}

// Logger возвращает логгер приложения.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// GetServer создает и возвращает настроенный HTTP сервер.
// Сервер настроен с оптимальными таймаутами для production использования.
// Использует текущий роутер приложения как обработчик запросов.
//
// Возвращает готовый к использованию http.Server с настроенными таймаутами.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Addr:         a.config.ServerAddress,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
