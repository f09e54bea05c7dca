package perm

import (
	"github.com/fundwit/go-commons/types"
)

// ResourcePermission is the per-resource grant record of one user.
// The four standard flags are independent of each other: CanEdit does
// not imply CanView.
type ResourcePermission struct {
	CanView   bool `json:"canView"`
	CanCreate bool `json:"canCreate"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`

	CustomActions []string `json:"customActions,omitempty"`
}

// PermissionSet is the resolved grant payload of one user, computed
// server-side from the user's roles. A resource missing from ByResource
// means no access to that resource at all.
type PermissionSet struct {
	UserID     types.ID                      `json:"userId"`
	Username   string                        `json:"username"`
	ByResource map[string]ResourcePermission `json:"permissionsByResource"`
}

// Pair names one required permission: an action on a resource.
type Pair struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// Requirement is the declarative shape consumed by guards. Exactly one
// of the three forms is expected to be set; the zero value means
// "no restriction".
type Requirement struct {
	Resource string `json:"resource,omitempty"`
	Action   string `json:"action,omitempty"`

	AnyOf []Pair `json:"anyOf,omitempty"`
	AllOf []Pair `json:"allOf,omitempty"`
}

// Unrestricted reports whether the requirement places no restriction.
func (r Requirement) Unrestricted() bool {
	return r.Resource == "" && r.Action == "" && len(r.AnyOf) == 0 && len(r.AllOf) == 0
}
