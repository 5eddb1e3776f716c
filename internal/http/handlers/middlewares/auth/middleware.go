package auth

import (
	"context"
	"net/http"
	"time"

	"linkgate/internal/domain/models"
)

//go:generate mockgen -source=middleware.go -destination=../../../../mocks/mock_authentication.go -package=mocks
type Authentication interface {
	Register(ctx context.Context) (models.Operator, string, time.Time, error)
	ValidateAndGetOperator(ctx context.Context, jwtToken string) (models.Operator, error)
}

const cookieName = "auth_token"

type ctxKey int

const operatorIDKey ctxKey = 0

// OperatorIDFromContext возвращает id оператора, положенный middleware.
func OperatorIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(operatorIDKey).(int64)
	return id, ok
}

// ContextWithOperatorID - для тестов хендлеров.
func ContextWithOperatorID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, operatorIDKey, id)
}

// MiddlewareAuth достает оператора из куки, при отсутствии или
// невалидности токена молча регистрирует нового и продолжает запрос.
func MiddlewareAuth(authSvc Authentication) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, cookieErr := r.Cookie(cookieName)
			if cookieErr == nil && cookie.Value != "" {
				op, validateErr := authSvc.ValidateAndGetOperator(ctx, cookie.Value)
				if validateErr == nil {
					ctx = ContextWithOperatorID(ctx, op.ID)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			op, tokenString, tokenExpiry, registerErr := authSvc.Register(ctx)
			if registerErr != nil {
				http.Error(w, "Authentication failed", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    tokenString,
				Path:     "/",
				Expires:  tokenExpiry,
				HttpOnly: true,
				Secure:   true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx = ContextWithOperatorID(ctx, op.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
