package auth

// Authorize decides whether a role may perform the operation identified by a
// permission key. Pure decision function: no side effects, total over the
// defined permission set.
func Authorize(role Role, perm string) error {
	perms, ok := rolePermissions[role]
	if !ok {
		return ErrAccessDenied
	}
	if _, ok := perms[perm]; !ok {
		return ErrAccessDenied
	}
	return nil
}

// HasPermission reports the authorization decision as a boolean.
func HasPermission(role Role, perm string) bool {
	return Authorize(role, perm) == nil
}
