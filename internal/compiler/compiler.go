package compiler

import "context"

// Engine интерфейс компилятора MJML-разметки
type Engine interface {
	// Compile компилирует разметку в HTML.
	// Возвращает *CompileError, если компилятор отклонил разметку.
	Compile(ctx context.Context, markup string) (string, error)

	// Version возвращает версию подключенного компилятора
	Version() string
}
