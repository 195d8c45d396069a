package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/models"
	"github.com/InQaaaaGit/mjml_render.git/internal/service"
)

// statusForCode возвращает HTTP-статус для кода ошибки сервиса
func statusForCode(code string) int {
	switch code {
	case models.CodeInvalidInput, models.CodeCompilationError:
		return http.StatusBadRequest
	case models.CodeContentTooLarge, models.CodeTooManyItems:
		return http.StatusRequestEntityTooLarge
	case models.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON разбирает тело запроса в v. При отказе пишет конверт ошибки
// и возвращает false.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, contentTypeJSON) {
		h.writeError(w, http.StatusBadRequest, models.ErrorResponse{
			Error: "Content-Type must be application/json",
			Code:  models.CodeInvalidInput,
		})
		return false
	}

	defer func() {
		if err := r.Body.Close(); err != nil {
			h.logger.Error("Error closing request body", zap.Error(err))
		}
	}()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error: "request body is too large",
				Code:  models.CodeContentTooLarge,
			})
			return false
		}

		h.writeError(w, http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid JSON body",
			Code:  models.CodeInvalidInput,
		})
		return false
	}

	return true
}

// writeServiceError переводит ошибку сервиса в конверт ответа
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		h.writeError(w, statusForCode(svcErr.Code), models.ErrorResponse{
			Error:  svcErr.Message,
			Code:   svcErr.Code,
			Errors: svcErr.Diagnostics,
		})
		return
	}

	h.logger.Error("Unexpected error",
		zap.String("path", r.URL.Path),
		zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, models.ErrorResponse{
		Error: h.internalMessage(err.Error()),
		Code:  models.CodeInternalError,
	})
}

// internalMessage скрывает внутренние подробности вне режима разработки
func (h *Handler) internalMessage(detail string) string {
	if h.cfg.IsDevelopment() {
		return detail
	}
	return "internal server error"
}
