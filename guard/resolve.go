package guard

import "deskgate/perm"

// ResolveAccess is the single decision function shared by the route
// guard and the visibility guard. It dispatches on the requirement
// shape: a single pair, a disjunction, a conjunction, or no restriction
// at all.
func ResolveAccess(set *perm.PermissionSet, requirement perm.Requirement) bool {
	if requirement.Resource != "" && requirement.Action != "" {
		return perm.HasPermission(set, requirement.Resource, requirement.Action)
	}
	if len(requirement.AnyOf) > 0 {
		return perm.HasAnyPermission(set, requirement.AnyOf)
	}
	if len(requirement.AllOf) > 0 {
		return perm.HasAllPermissions(set, requirement.AllOf)
	}
	return true
}
