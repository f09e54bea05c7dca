package perm

// HasPermission reports whether the grant set allows the action on the
// resource. A nil set, an unknown resource or an unknown action always
// evaluates to false, never to an error.
func HasPermission(set *PermissionSet, resource, action string) bool {
	if set == nil || set.ByResource == nil {
		return false
	}
	p, found := set.ByResource[resource]
	if !found {
		return false
	}

	switch action {
	case ActionView:
		return p.CanView
	case ActionCreate:
		return p.CanCreate
	case ActionEdit:
		return p.CanEdit
	case ActionDelete:
		return p.CanDelete
	}

	for _, custom := range p.CustomActions {
		if custom == action {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether at least one of the pairs is
// granted. An empty pair list evaluates to false; "no restriction" is
// expressed with an unrestricted Requirement, not with an empty anyOf.
func HasAnyPermission(set *PermissionSet, pairs []Pair) bool {
	for _, p := range pairs {
		if HasPermission(set, p.Resource, p.Action) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every pair is granted. An empty
// pair list evaluates to true.
func HasAllPermissions(set *PermissionSet, pairs []Pair) bool {
	for _, p := range pairs {
		if !HasPermission(set, p.Resource, p.Action) {
			return false
		}
	}
	return true
}

// AvailableActions lists the granted actions on the resource: the
// standard actions in view, create, edit, delete order, then the
// granted custom actions in their stored order.
func AvailableActions(set *PermissionSet, resource string) []string {
	actions := []string{}
	if set == nil || set.ByResource == nil {
		return actions
	}
	p, found := set.ByResource[resource]
	if !found {
		return actions
	}

	if p.CanView {
		actions = append(actions, ActionView)
	}
	if p.CanCreate {
		actions = append(actions, ActionCreate)
	}
	if p.CanEdit {
		actions = append(actions, ActionEdit)
	}
	if p.CanDelete {
		actions = append(actions, ActionDelete)
	}
	actions = append(actions, p.CustomActions...)
	return actions
}

// CanAccessResource reports whether the resource is viewable at all.
func CanAccessResource(set *PermissionSet, resource string) bool {
	return HasPermission(set, resource, ActionView)
}
