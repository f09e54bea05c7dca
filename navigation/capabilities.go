package navigation

import "deskgate/perm"

// Capabilities is the flattened permission snapshot the operator shell
// binds its affordances to. All fields derive from the evaluator; the
// zero value is the correct answer for an absent grant set.
type Capabilities struct {
	CanViewUsers   bool `json:"canViewUsers"`
	CanCreateUsers bool `json:"canCreateUsers"`
	CanEditUsers   bool `json:"canEditUsers"`
	CanDeleteUsers bool `json:"canDeleteUsers"`

	CanViewTickets   bool `json:"canViewTickets"`
	CanCreateTickets bool `json:"canCreateTickets"`
	CanEditTickets   bool `json:"canEditTickets"`
	CanDeleteTickets bool `json:"canDeleteTickets"`
	CanAssignTickets bool `json:"canAssignTickets"`

	CanViewAnalytics bool `json:"canViewAnalytics"`

	CanViewReferences   bool `json:"canViewReferences"`
	CanCreateReferences bool `json:"canCreateReferences"`
	CanEditReferences   bool `json:"canEditReferences"`
	CanDeleteReferences bool `json:"canDeleteReferences"`

	CanViewChats bool `json:"canViewChats"`
	CanEditChats bool `json:"canEditChats"`

	CanViewSettings bool `json:"canViewSettings"`
	CanEditSettings bool `json:"canEditSettings"`

	CanViewNotifications   bool `json:"canViewNotifications"`
	CanCreateNotifications bool `json:"canCreateNotifications"`

	CanViewRoles   bool `json:"canViewRoles"`
	CanCreateRoles bool `json:"canCreateRoles"`
	CanEditRoles   bool `json:"canEditRoles"`
	CanDeleteRoles bool `json:"canDeleteRoles"`
}

func BuildCapabilities(set *perm.PermissionSet) Capabilities {
	return Capabilities{
		CanViewUsers:   perm.HasPermission(set, perm.ResourceUsers, perm.ActionView),
		CanCreateUsers: perm.HasPermission(set, perm.ResourceUsers, perm.ActionCreate),
		CanEditUsers:   perm.HasPermission(set, perm.ResourceUsers, perm.ActionEdit),
		CanDeleteUsers: perm.HasPermission(set, perm.ResourceUsers, perm.ActionDelete),

		CanViewTickets:   perm.HasPermission(set, perm.ResourceTickets, perm.ActionView),
		CanCreateTickets: perm.HasPermission(set, perm.ResourceTickets, perm.ActionCreate),
		CanEditTickets:   perm.HasPermission(set, perm.ResourceTickets, perm.ActionEdit),
		CanDeleteTickets: perm.HasPermission(set, perm.ResourceTickets, perm.ActionDelete),
		CanAssignTickets: perm.HasPermission(set, perm.ResourceTickets, perm.ActionAssign),

		CanViewAnalytics: perm.HasPermission(set, perm.ResourceAnalytics, perm.ActionView),

		CanViewReferences:   perm.HasPermission(set, perm.ResourceReferences, perm.ActionView),
		CanCreateReferences: perm.HasPermission(set, perm.ResourceReferences, perm.ActionCreate),
		CanEditReferences:   perm.HasPermission(set, perm.ResourceReferences, perm.ActionEdit),
		CanDeleteReferences: perm.HasPermission(set, perm.ResourceReferences, perm.ActionDelete),

		CanViewChats: perm.HasPermission(set, perm.ResourceChats, perm.ActionView),
		CanEditChats: perm.HasPermission(set, perm.ResourceChats, perm.ActionEdit),

		CanViewSettings: perm.HasPermission(set, perm.ResourceSettings, perm.ActionView),
		CanEditSettings: perm.HasPermission(set, perm.ResourceSettings, perm.ActionEdit),

		CanViewNotifications:   perm.HasPermission(set, perm.ResourceNotifications, perm.ActionView),
		CanCreateNotifications: perm.HasPermission(set, perm.ResourceNotifications, perm.ActionCreate),

		CanViewRoles:   perm.HasPermission(set, perm.ResourceRoles, perm.ActionView),
		CanCreateRoles: perm.HasPermission(set, perm.ResourceRoles, perm.ActionCreate),
		CanEditRoles:   perm.HasPermission(set, perm.ResourceRoles, perm.ActionEdit),
		CanDeleteRoles: perm.HasPermission(set, perm.ResourceRoles, perm.ActionDelete),
	}
}
