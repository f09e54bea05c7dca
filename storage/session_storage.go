package storage

import (
	"context"

	"github.com/fundwit/go-commons/types"
)

// SessionRecord is the durable copy of one operator session: the auth
// token, the serialized identity and the last successfully loaded
// permission set. Identity and Permissions are opaque JSON documents
// here; parsing belongs to the session store.
type SessionRecord struct {
	Token string `json:"token" gorm:"primary_key" sql:"type:VARCHAR(64) NOT NULL"`

	Identity    string `json:"identity" sql:"type:TEXT"`
	Permissions string `json:"permissions" sql:"type:TEXT"`
	PermsLoaded bool   `json:"permsLoaded"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

// SessionStorage is the durable-storage port of the session store.
// It is a write-through cache of the in-memory state: token and
// identity are written together, and Delete clears every slot of the
// session at once.
type SessionStorage interface {
	// SaveSession writes token and identity as one record. A repeated
	// save for the same token overwrites the record.
	SaveSession(ctx context.Context, record *SessionRecord) error
	// SavePermissions replaces the cached permission document of an
	// existing session and marks it loaded.
	SavePermissions(ctx context.Context, token string, permissions string) error
	// Find returns the record for the token, or nil when absent.
	Find(ctx context.Context, token string) (*SessionRecord, error)
	// Delete removes the whole record: token, identity and cached
	// permissions disappear together.
	Delete(ctx context.Context, token string) error
}
