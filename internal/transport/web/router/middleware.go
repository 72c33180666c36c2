package router

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

const internalKeyHeader = "X-Internal-Key"

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, "+userIDHeader)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAuthMiddleware rejects requests that no auth validator attached a user to.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.UserIDFromContext(r.Context()) == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "unauthenticated request to protected endpoint",
				"method", r.Method, "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireInternalKeyMiddleware admits only requests carrying the shared service key.
func requireInternalKeyMiddleware(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(internalKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				logger := domain.LoggerFromContext(r.Context())
				logger.WarnContext(r.Context(), "rejected internal request with invalid key")
				writeError(w, http.StatusForbidden, "invalid internal key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
