package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// APIKeyHeader — заголовок со статическим ключом.
const APIKeyHeader = "x-api-key"

// WithAPIKey пропускает запрос дальше только при точном совпадении
// заголовка x-api-key с настроенным ключом. Сравнение за константное время.
func WithAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(APIKeyHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
