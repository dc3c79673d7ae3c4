package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const CookieName = "apod_client"

type ctxKey struct{}

// Middleware makes sure every request carries a client id, issuing a cookie
// when the browser has none.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(CookieName); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), id)))
	})
}

func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ClientID returns the id set by Middleware, or "" outside of it.
func ClientID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
