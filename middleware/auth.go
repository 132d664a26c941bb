package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"postit-board/token"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// AdminID returns the authenticated admin id RequireAuth stored on the
// request context. It is the only trust anchor for store access: owner ids
// never come from the request body or query.
func AdminID(r *http.Request) int {
	id, _ := r.Context().Value(adminIDKey).(int)
	return id
}

// RequireAuth rejects requests that don't carry a valid bearer token in the
// Authorization header. A missing credential is 401; a credential that fails
// signature or expiry verification is 403.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == authHeader {
				http.Error(w, "Invalid token format", http.StatusUnauthorized)
				return
			}

			adminID, err := token.Verify(tokenStr, secret)
			if err != nil {
				log.Printf("Auth Middleware - rejected token for %s %s: %v", r.Method, r.URL.Path, err)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			r = r.WithContext(context.WithValue(r.Context(), adminIDKey, adminID))
			next.ServeHTTP(w, r)
		})
	}
}
