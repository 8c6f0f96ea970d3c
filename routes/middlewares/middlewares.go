package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/oauth"
)

// Admin authorizes bearer tokens carrying the 'admin' role. The signing
// secret comes from configuration, never from a literal.
func Admin(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return chi.Chain(oauth.Authorize(secret, nil), admin).Handler(next)
	}
}

func admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := r.Context().Value(oauth.ClaimsContext).(map[string]string)

		isAdmin := false
		if rolesClaim, ok := claims["roles"]; ok {
			for _, role := range strings.Split(rolesClaim, ",") {
				if role == "admin" {
					isAdmin = true
					break
				}
			}
		}

		if !isAdmin {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
