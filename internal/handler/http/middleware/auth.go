package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fichadas/timeclock-backend-go/internal/domain/auth"
	"github.com/fichadas/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// AuthRequired rejects requests without a valid access token and stores the
// authenticated user id in the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			rawID, ok := claims["user_id"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			userID, err := strconv.Atoi(rawID)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
