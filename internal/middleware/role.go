package middleware

import (
	"net/http"

	"firewings/internal/models"
)

// RequireRole gates a route to one of the two roles. The switch is
// exhaustive over the role enum; anything outside it is rejected.
func RequireRole(required models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := IdentityFromContext(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			switch claims.Role {
			case models.RoleAdmin, models.RoleUser:
				if claims.Role != required {
					http.Error(w, "insufficient role", http.StatusForbidden)
					return
				}
			default:
				http.Error(w, "unknown role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
