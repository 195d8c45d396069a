package middleware

import "net/http"

// BodyLimitMiddleware ограничивает размер тела запроса n байтами.
// Превышение лимита всплывает как *http.MaxBytesError при чтении тела.
func BodyLimitMiddleware(n int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
