package navigation

import (
	"deskgate/guard"
	"deskgate/perm"
)

// MenuItem is one sidebar entry of the operator shell.
type MenuItem struct {
	ID          string           `json:"id"`
	Label       string           `json:"label"`
	Icon        string           `json:"icon"`
	Path        string           `json:"path"`
	Requirement perm.Requirement `json:"-"`
}

// AllMenuItems is the full menu; entries without a requirement are
// available to everyone, including sessions whose permissions are not
// resolved yet.
var AllMenuItems = []MenuItem{
	{ID: "dashboard", Label: "Dashboard", Icon: "home", Path: "/dashboard"},
	{ID: "tickets", Label: "Tickets", Icon: "clipboard", Path: "/tickets",
		Requirement: perm.Requirement{Resource: perm.ResourceTickets, Action: perm.ActionView}},
	{ID: "chats", Label: "Chats", Icon: "message-square", Path: "/chats",
		Requirement: perm.Requirement{Resource: perm.ResourceChats, Action: perm.ActionView}},
	{ID: "references", Label: "References", Icon: "database", Path: "/references",
		Requirement: perm.Requirement{Resource: perm.ResourceReferences, Action: perm.ActionView}},
	{ID: "analytics", Label: "Analytics", Icon: "bar-chart", Path: "/analytics",
		Requirement: perm.Requirement{Resource: perm.ResourceAnalytics, Action: perm.ActionView}},
	{ID: "users", Label: "Users", Icon: "users", Path: "/user-management",
		Requirement: perm.Requirement{Resource: perm.ResourceUsers, Action: perm.ActionView}},
	{ID: "roles", Label: "Roles", Icon: "shield", Path: "/roles",
		Requirement: perm.Requirement{Resource: perm.ResourceRoles, Action: perm.ActionView}},
	{ID: "settings", Label: "Settings", Icon: "settings", Path: "/settings",
		Requirement: perm.Requirement{Resource: perm.ResourceSettings, Action: perm.ActionView}},
	{ID: "help", Label: "Help", Icon: "help-circle", Path: "/help"},
}

// FilterMenu keeps the entries the grant set allows. An absent set
// still yields the unrestricted entries.
func FilterMenu(set *perm.PermissionSet, items []MenuItem) []MenuItem {
	filtered := []MenuItem{}
	for _, item := range items {
		if guard.ResolveAccess(set, item.Requirement) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
