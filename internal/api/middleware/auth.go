package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/BKR-PickupService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором пользователя.
// Проставляется вышестоящим шлюзом после аутентификации; сам сервис
// сессиями не занимается.
const HeaderUserID = "X-User-ID"

type userIDCtxKey struct{}

// Auth проверяет наличие корректного X-User-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondJSON(w, http.StatusUnauthorized,
				handlers.ErrorResponse{Error: "отсутствует заголовок " + HeaderUserID})
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondJSON(w, http.StatusUnauthorized,
				handlers.ErrorResponse{Error: "некорректный заголовок " + HeaderUserID})
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUserID кладет ID пользователя в контекст так же, как это делает Auth
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDCtxKey{}, userID)
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(int64)
	return userID, ok
}
