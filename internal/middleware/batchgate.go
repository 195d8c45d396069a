package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/models"
)

// batchProbe — минимальная форма пакетного запроса для предварительной проверки
type batchProbe struct {
	Items []json.RawMessage `json:"items"`
}

// BatchGateMiddleware отклоняет заведомо негабаритные пакеты до полного
// разбора запроса. Тело, не разбираемое на этом этапе, пропускается дальше:
// окончательную проверку выполняет обработчик.
func BatchGateMiddleware(maxItems int, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if closeErr := r.Body.Close(); closeErr != nil {
				logger.Error("Error closing request body", zap.Error(closeErr))
			}
			// Обработчик читает тело заново
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					writeJSONError(w, logger, http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error: "request body is too large",
						Code:  models.CodeContentTooLarge,
					})
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			var probe batchProbe
			if err := json.Unmarshal(body, &probe); err == nil && len(probe.Items) > maxItems {
				writeJSONError(w, logger, http.StatusRequestEntityTooLarge, models.ErrorResponse{
					Error: fmt.Sprintf("batch exceeds the limit of %d items", maxItems),
					Code:  models.CodeTooManyItems,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
