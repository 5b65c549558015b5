package auth

import (
	"log/slog"
	"net/http"

	"github.com/nexushr/hr-management/internal"
)

// RBACAuthorization guards routes on the three-step access ladder. The
// level comes from the validated token, so there is no per-request
// directory round trip.
type RBACAuthorization struct {
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{logger: logger}
}

// RequirePrivileged admits managers and admins.
func (ra *RBACAuthorization) RequirePrivileged() func(http.Handler) http.Handler {
	return ra.require(func(u *internal.User) bool { return u.IsPrivileged() }, "manager or admin")
}

// RequireAdmin admits admins only.
func (ra *RBACAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.require(func(u *internal.User) bool { return u.IsAdmin() }, "admin")
}

func (ra *RBACAuthorization) require(allowed func(*internal.User) bool, label string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := internal.UserFromContext(r.Context())
			if !ok || user == nil {
				ra.logger.Warn("authorization check failed: user not found in context")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !allowed(user) {
				ra.logger.Warn("access denied: insufficient access level",
					"user_id", user.ID,
					"access_level", user.AccessLevel,
					"required", label)
				http.Error(w, "Forbidden: insufficient access level", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
