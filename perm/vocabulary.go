package perm

// Resource names of the support-operations CRM. The evaluator treats
// resources as opaque keys; the constants only exist to keep guard
// declarations from drifting apart on string literals.
const (
	ResourceUsers         = "users"
	ResourceTickets       = "tickets"
	ResourceAnalytics     = "analytics"
	ResourceReferences    = "references"
	ResourceChats         = "chats"
	ResourceSettings      = "settings"
	ResourceNotifications = "notifications"
	ResourceRoles         = "roles"
)

// Standard actions. A resource may additionally declare custom actions
// beyond these; those are matched as plain strings.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
	ActionAssign = "assign"
)

// Commonly used pairs, for reuse across guard declarations.
var (
	UsersView   = Pair{Resource: ResourceUsers, Action: ActionView}
	UsersCreate = Pair{Resource: ResourceUsers, Action: ActionCreate}
	UsersEdit   = Pair{Resource: ResourceUsers, Action: ActionEdit}
	UsersDelete = Pair{Resource: ResourceUsers, Action: ActionDelete}

	TicketsView   = Pair{Resource: ResourceTickets, Action: ActionView}
	TicketsCreate = Pair{Resource: ResourceTickets, Action: ActionCreate}
	TicketsEdit   = Pair{Resource: ResourceTickets, Action: ActionEdit}
	TicketsDelete = Pair{Resource: ResourceTickets, Action: ActionDelete}
	TicketsAssign = Pair{Resource: ResourceTickets, Action: ActionAssign}

	AnalyticsView = Pair{Resource: ResourceAnalytics, Action: ActionView}

	ReferencesView   = Pair{Resource: ResourceReferences, Action: ActionView}
	ReferencesCreate = Pair{Resource: ResourceReferences, Action: ActionCreate}
	ReferencesEdit   = Pair{Resource: ResourceReferences, Action: ActionEdit}
	ReferencesDelete = Pair{Resource: ResourceReferences, Action: ActionDelete}

	ChatsView = Pair{Resource: ResourceChats, Action: ActionView}
	ChatsEdit = Pair{Resource: ResourceChats, Action: ActionEdit}

	SettingsView = Pair{Resource: ResourceSettings, Action: ActionView}
	SettingsEdit = Pair{Resource: ResourceSettings, Action: ActionEdit}

	NotificationsView   = Pair{Resource: ResourceNotifications, Action: ActionView}
	NotificationsCreate = Pair{Resource: ResourceNotifications, Action: ActionCreate}

	RolesView   = Pair{Resource: ResourceRoles, Action: ActionView}
	RolesCreate = Pair{Resource: ResourceRoles, Action: ActionCreate}
	RolesEdit   = Pair{Resource: ResourceRoles, Action: ActionEdit}
	RolesDelete = Pair{Resource: ResourceRoles, Action: ActionDelete}
)
