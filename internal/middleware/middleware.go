// Package middleware содержит HTTP-middleware сервиса: идентификатор
// запроса, логирование, gzip, восстановление после паник и
// предварительные проверки пакетных запросов.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/models"
)

// contextKey используется как ключ для значений в контексте
type contextKey string

// RequestIDKey используется как ключ для хранения ID запроса в контексте
const RequestIDKey contextKey = "request_id"

// RequestIDFromContext возвращает ID запроса из контекста.
// Для запросов вне HTTP-конвейера возвращает пустую строку.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// writeJSONError пишет конверт ошибки, минуя обработчики
func writeJSONError(w http.ResponseWriter, logger *zap.Logger, status int, resp models.ErrorResponse) {
	resp.StatusCode = status
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil && logger != nil {
		logger.Error("Error writing JSON response", zap.Error(err))
	}
}
