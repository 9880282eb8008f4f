package auth

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/transport"
)

type RBACAuthorization struct {
	checker PermissionChecker
	*transport.BaseHandler
}

func NewRBACAuthorization(checker PermissionChecker, logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{
		checker:     checker,
		BaseHandler: transport.NewBaseHandler(logger),
	}
}

// RequireRoles lets a request through when the caller holds one of roles.
func (ra *RBACAuthorization) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				ra.WriteAppError(w, internal.ErrMissingToken)
				return
			}

			if !ra.checker.HasAnyRole(user, roles...) {
				ra.Logger.WarnContext(r.Context(), "access denied: role not allowed",
					"user_id", user.ID,
					"role", user.Role,
					"required_roles", roles)
				ra.WriteAppError(w, internal.ErrAccessDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (ra *RBACAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.RequireRoles(RoleAdmin)
}
