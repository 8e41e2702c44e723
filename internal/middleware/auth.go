package middleware

import (
	"context"
	"net/http"
	"slots_backend/internal/config"
	"slots_backend/pkg/token"
	"strconv"
	"strings"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth проверяет Bearer access токен и кладет ID пользователя в контекст запроса
func Auth(jwtCfg config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || len(tokenStr) == 0 {
				http.Error(w, "missing access token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(tokenStr, jwtCfg.AccessTokenSecretKey())
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			userID, err := strconv.Atoi(claims.ID)
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
		})
	}
}

func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext - достает ID пользователя, положенный Auth
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}
