package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader — заголовок с идентификатором запроса
const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware присваивает каждому запросу идентификатор.
// Идентификатор из заголовка клиента сохраняется, иначе генерируется новый.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
