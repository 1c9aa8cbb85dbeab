package middleware

import (
	"context"
	"net/http"

	"github.com/ljacquet/patrimoine-backend/internal/api/response"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserContext resolves the acting user for every request from the X-User-ID
// header and stores it in the request context. Requests without the header
// act as the default user. An unknown user ID is a 404.
func UserContext(users *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := users.ResolveUser(r.Header.Get("X-User-ID"))
			if err != nil {
				response.RespondError(w, http.StatusNotFound, "unknown user", err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user resolved by UserContext for this request.
// The zero User is returned when the middleware did not run.
func UserFromContext(ctx context.Context) model.User {
	user, _ := ctx.Value(userContextKey).(model.User)
	return user
}

// WithUser returns a context carrying the given user, for tests and internal
// callers that bypass the HTTP middleware.
func WithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
