package auth

type PermissionChecker interface {
	IsAdmin(u *User) bool
	HasAnyRole(u *User, roles ...string) bool
}

type DefaultPermissionChecker struct{}

func NewPermissionChecker() PermissionChecker {
	return &DefaultPermissionChecker{}
}

func (c *DefaultPermissionChecker) IsAdmin(u *User) bool {
	return c.HasAnyRole(u, RoleAdmin)
}

func (c *DefaultPermissionChecker) HasAnyRole(u *User, roles ...string) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
