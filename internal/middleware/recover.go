package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/models"
)

// RecoverMiddleware перехватывает паники обработчиков и отвечает единым
// конвертом ошибки. При echoDetails текст паники попадает в ответ.
func RecoverMiddleware(logger *zap.Logger, echoDetails bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic recovered",
					zap.String("request_id", RequestIDFromContext(r.Context())),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.String("stack", string(debug.Stack())),
				)

				message := "internal server error"
				if echoDetails {
					message = fmt.Sprintf("panic: %v", rec)
				}
				writeJSONError(w, logger, http.StatusInternalServerError, models.ErrorResponse{
					Error: message,
					Code:  models.CodeInternalError,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
