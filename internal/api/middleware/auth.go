// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
)

type ctxKey string

const memberIDKey ctxKey = "memberID"

// HeaderMemberID заголовок с идентификатором участника клуба.
// Аутентификацию выполняет API-шлюз, сервис доверяет заголовку
const HeaderMemberID = "X-Member-ID"

// Auth извлекает идентификатор участника из заголовка и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderMemberID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "не указан заголовок X-Member-ID")
			return
		}

		memberID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || memberID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-Member-ID")
			return
		}

		ctx := context.WithValue(r.Context(), memberIDKey, memberID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MemberIDFromContext возвращает идентификатор участника из контекста
func MemberIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(memberIDKey).(int64)
	return id, ok
}
