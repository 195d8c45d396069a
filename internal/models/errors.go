package models

// Коды ошибок, используемые во всех ответах сервиса.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeContentTooLarge  = "CONTENT_TOO_LARGE"
	CodeTooManyItems     = "TOO_MANY_ITEMS"
	CodeCompilationError = "COMPILATION_ERROR"
	CodeNoOutput         = "NO_OUTPUT"
	CodeProcessingError  = "PROCESSING_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeNotFound         = "NOT_FOUND"
)

// Diagnostic представляет одно сообщение компилятора о проблеме в разметке
type Diagnostic struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
}

// ErrorResponse представляет единый конверт ошибки для всех эндпоинтов
type ErrorResponse struct {
	Error      string       `json:"error"`
	Code       string       `json:"code"`
	StatusCode int          `json:"statusCode,omitempty"`
	Errors     []Diagnostic `json:"errors,omitempty"`
	Path       string       `json:"path,omitempty"`
}
