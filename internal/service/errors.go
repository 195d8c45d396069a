package service

import "github.com/InQaaaaGit/mjml_render.git/internal/models"

// Error описывает отказ бизнес-логики с кодом из единой таблицы кодов.
// Diagnostics заполняется только для ошибок компиляции.
type Error struct {
	Code        string
	Message     string
	Diagnostics []models.Diagnostic
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	return e.Message
}

// newInvalidInput возвращает ошибку некорректного входа
func newInvalidInput(message string) *Error {
	return &Error{Code: models.CodeInvalidInput, Message: message}
}

// newContentTooLarge возвращает ошибку превышения размера разметки
func newContentTooLarge(message string) *Error {
	return &Error{Code: models.CodeContentTooLarge, Message: message}
}

// newCompilationError возвращает ошибку компиляции с диагностикой
func newCompilationError(message string, diags []models.Diagnostic) *Error {
	return &Error{Code: models.CodeCompilationError, Message: message, Diagnostics: diags}
}

// newNoOutput возвращается, когда компилятор не вернул ни HTML, ни ошибку
func newNoOutput(message string) *Error {
	return &Error{Code: models.CodeNoOutput, Message: message}
}
