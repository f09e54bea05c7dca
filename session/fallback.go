package session

import "deskgate/perm"

// FallbackPermissions is the degraded-mode policy used when the
// permission service itself cannot be reached and no cached set exists.
// It keeps the application minimally navigable: view only, on a fixed
// safe subset of resources, no create/edit/delete and no custom
// actions. It never grants elevated trust.
func FallbackPermissions(identity Identity) *perm.PermissionSet {
	viewOnly := perm.ResourcePermission{CanView: true}
	return &perm.PermissionSet{
		UserID:   identity.ID,
		Username: identity.Name,
		ByResource: map[string]perm.ResourcePermission{
			perm.ResourceTickets:       viewOnly,
			perm.ResourceChats:         viewOnly,
			perm.ResourceReferences:    viewOnly,
			perm.ResourceSettings:      viewOnly,
			perm.ResourceNotifications: viewOnly,
		},
	}
}
