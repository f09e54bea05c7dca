package session

import (
	"deskgate/perm"

	"github.com/fundwit/go-commons/types"
)

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Identity struct {
	ID       types.ID `json:"id"`
	Name     string   `json:"name"`
	Nickname string   `json:"nickname"`
}

// State is a read-only snapshot of one operator session.
// Authenticated implies Token is present; Perms present implies
// PermsLoaded; no Token means no Perms.
type State struct {
	Identity      Identity            `json:"identity"`
	Token         string              `json:"token"`
	Authenticated bool                `json:"authenticated"`
	Perms         *perm.PermissionSet `json:"perms,omitempty"`
	PermsLoaded   bool                `json:"permsLoaded"`
}
