package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/app"
	"github.com/InQaaaaGit/mjml_render.git/internal/buildinfo"
	"github.com/InQaaaaGit/mjml_render.git/internal/server"
)

// Значения заполняются при сборке через ldflags:
//
//	go build -ldflags "-X main.buildVersion=v1.0.0 -X main.buildDate=2026-08-01 -X main.buildCommit=abc123"
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// shutdownTimeout - время ожидания активных запросов при остановке сервера
const shutdownTimeout = 10 * time.Second

func main() {
	logger, cleanup := server.InitLogger()
	defer cleanup()

	if _, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Infof)); err != nil {
		logger.Warn("Error adjusting GOMAXPROCS", zap.Error(err))
	}

	build := buildinfo.NewInfo(buildVersion, buildDate, buildCommit)
	build.Print()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, logger, build); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server error", zap.Error(err))
	}
}

// runServer собирает приложение и блокируется до отмены контекста или ошибки сервера.
// При отмене контекста выполняется graceful shutdown: сервер перестает принимать
// новые запросы и дожидается завершения уже запущенной компиляции.
func runServer(ctx context.Context, logger *zap.Logger, build *buildinfo.Info) error {
	cfg := server.InitConfig(logger)

	application, err := app.NewApp(cfg, build)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	application.Logger().Info("Build info", zap.Stringer("build", build))

	srv := server.NewHTTPServer(application.GetServer(), cfg, application.Logger())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
