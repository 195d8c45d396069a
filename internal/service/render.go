package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/compiler"
	"github.com/InQaaaaGit/mjml_render.git/internal/config"
	"github.com/InQaaaaGit/mjml_render.git/internal/models"
)

// Ограничения на входные данные
const (
	// MaxMarkupBytes — максимальный размер одного MJML-документа в байтах
	MaxMarkupBytes = 1 << 20
	// MaxBatchItems — максимальное число записей в одном пакете
	MaxBatchItems = 100
)

// RenderService определяет интерфейс сервиса компиляции MJML
type RenderService interface {
	// RenderOne компилирует один документ.
	// Возвращает *Error для классифицированных отказов.
	RenderOne(ctx context.Context, markup string) (string, error)

	// RenderBatch компилирует записи пакета независимо друг от друга
	RenderBatch(ctx context.Context, items []models.BatchItem) ([]models.BatchItemResult, models.BatchSummary)

	// EngineVersion возвращает версию подключенного компилятора
	EngineVersion() string
}

// RenderServiceImpl реализует RenderService
type RenderServiceImpl struct {
	engine compiler.Engine
	config *config.Config
	logger *zap.Logger
}

// Проверка соответствия интерфейсу на этапе компиляции
var _ RenderService = (*RenderServiceImpl)(nil)

// NewRenderService создает новый экземпляр RenderService
func NewRenderService(engine compiler.Engine, cfg *config.Config, logger *zap.Logger) *RenderServiceImpl {
	return &RenderServiceImpl{
		engine: engine,
		config: cfg,
		logger: logger,
	}
}

// RenderOne компилирует один MJML-документ в HTML
func (s *RenderServiceImpl) RenderOne(ctx context.Context, markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", newInvalidInput("mjml content is required")
	}
	if len(markup) > MaxMarkupBytes {
		return "", newContentTooLarge(fmt.Sprintf("mjml content exceeds the limit of %d bytes", MaxMarkupBytes))
	}

	html, err := s.compile(ctx, markup)
	if err != nil {
		var compileErr *compiler.CompileError
		if errors.As(err, &compileErr) {
			return "", newCompilationError(compileErr.Message, compileErr.Diagnostics)
		}
		return "", err
	}
	if html == "" {
		return "", newNoOutput("compiler returned no output")
	}

	return html, nil
}

// EngineVersion возвращает версию подключенного компилятора
func (s *RenderServiceImpl) EngineVersion() string {
	return s.engine.Version()
}

// compile вызывает компилятор, перехватывая панику внутри вызова
func (s *RenderServiceImpl) compile(ctx context.Context, markup string) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("compiler panic", zap.Any("panic", r))
			err = fmt.Errorf("compiler panic: %v", r)
		}
	}()

	return s.engine.Compile(ctx, markup)
}
