package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/go-chi/chi"
)

var ErrForbidden = errors.New("forbidden")

// ABACPolicy decides record-level access from identity attributes.
type ABACPolicy struct{}

// CanAccessEmployee allows administrators and the employee themself.
func (p *ABACPolicy) CanAccessEmployee(u *User, employeeID int64) error {
	if u == nil {
		return ErrForbidden
	}
	if u.IsAdmin() || u.EmployeeID == employeeID {
		return nil
	}
	return ErrForbidden
}

// ScopeEmployee resolves the employee filter for list endpoints: admins may
// ask for anyone (or everyone with 0), others are pinned to themselves.
func (p *ABACPolicy) ScopeEmployee(u *User, requested int64) (int64, error) {
	if u == nil {
		return 0, ErrForbidden
	}
	if u.IsAdmin() {
		return requested, nil
	}
	if requested != 0 && requested != u.EmployeeID {
		return 0, ErrForbidden
	}
	return u.EmployeeID, nil
}

// RequireSelfOrAdmin guards routes whose {param} names an employee id.
func RequireSelfOrAdmin(abac *ABACPolicy, base *transport.BaseHandler, param string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok || u == nil {
				base.WriteAppError(w, internal.ErrMissingToken)
				return
			}
			id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
			if err != nil {
				base.WriteAppError(w, internal.NewValidationFieldError(param, "invalid "+param, internal.ErrCodeInvalidID))
				return
			}
			if err := abac.CanAccessEmployee(u, id); err != nil {
				base.Logger.WarnContext(r.Context(), "access denied: not owner", "user_id", u.ID, "employee_id", id)
				base.WriteAppError(w, internal.ErrAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
