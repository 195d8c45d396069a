package compiler

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/Boostport/mjml-go"

	"github.com/InQaaaaGit/mjml_render.git/internal/models"
)

// mjmlModulePath — путь модуля компилятора в метаданных сборки
const mjmlModulePath = "github.com/Boostport/mjml-go"

// versionUnknown возвращается, когда версия компилятора недоступна
const versionUnknown = "unknown"

// MJMLEngine реализует Engine поверх встроенного компилятора mjml-go
type MJMLEngine struct{}

// Проверка соответствия интерфейсу на этапе компиляции
var _ Engine = (*MJMLEngine)(nil)

// NewMJMLEngine создает новый экземпляр MJMLEngine
func NewMJMLEngine() *MJMLEngine {
	return &MJMLEngine{}
}

// Compile компилирует разметку в HTML. Мягкая валидация собирает все
// сообщения по документу целиком и возвращает их структурированным
// списком; при наличии хотя бы одного компилятор отдает ошибку вместо
// HTML, поэтому наружу возвращается *CompileError без результата.
// Строгий режим не подходит: он обрывает компиляцию исключением, в
// котором список сообщений уже склеен в одну строку.
func (e *MJMLEngine) Compile(ctx context.Context, markup string) (string, error) {
	html, err := mjml.ToHTML(ctx, markup, mjml.WithValidationLevel(mjml.Soft))
	if err != nil {
		var mjmlErr mjml.Error
		if errors.As(err, &mjmlErr) {
			return "", newCompileError(mjmlErr)
		}
		return "", fmt.Errorf("mjml compile: %w", err)
	}
	return html, nil
}

// Version возвращает версию модуля компилятора из метаданных сборки
func (e *MJMLEngine) Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionUnknown
	}
	for _, dep := range info.Deps {
		if dep.Path == mjmlModulePath {
			return dep.Version
		}
	}
	return versionUnknown
}

// newCompileError переводит ошибку компилятора во внутреннее представление
func newCompileError(err mjml.Error) *CompileError {
	msg := err.Message
	if msg == "" {
		msg = "MJML compilation failed"
	}
	diags := make([]models.Diagnostic, 0, len(err.Details))
	for _, d := range err.Details {
		diags = append(diags, models.Diagnostic{
			Line:    d.Line,
			Message: d.Message,
			Tag:     d.TagName,
		})
	}
	return &CompileError{Message: msg, Diagnostics: diags}
}
