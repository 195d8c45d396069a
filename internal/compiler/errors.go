package compiler

import "github.com/InQaaaaGit/mjml_render.git/internal/models"

// CompileError возвращается, когда компилятор отклонил разметку.
// Diagnostics содержит сообщения компилятора в порядке обнаружения;
// для ошибок разбора разметки список может быть пустым.
type CompileError struct {
	Message     string
	Diagnostics []models.Diagnostic
}

// Error реализует интерфейс error
func (e *CompileError) Error() string {
	return e.Message
}
