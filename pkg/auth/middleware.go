package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/avkuzmin/wbcashback/pkg/utils"
)

type ContextKey string

const LoginKey ContextKey = "operatorLogin"

// Middleware guards the operator API with a bearer token issued by Login.
func Middleware(jwtService *JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), LoginKey, claims.Login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
