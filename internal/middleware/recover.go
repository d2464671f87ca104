package middleware

import (
	"encoding/json"
	"net/http"
)

// WithRecover перехватывает панику в любом месте пайплайна:
// детали уходят только в лог, клиент получает общий ответ 500.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				sugar.Errorw("panic recovered",
					"method", r.Method,
					"uri", r.RequestURI,
					"panic", rec,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
