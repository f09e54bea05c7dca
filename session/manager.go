package session

import (
	"context"
	"deskgate/common"
	"deskgate/storage"
	"time"

	"github.com/patrickmn/go-cache"
)

const TokenExpiration = 24 * time.Hour

// Manager tracks the live session stores, keyed by token. The cache is
// only an accelerator: a token missing from it is restored from durable
// storage through CheckAuth, so sessions survive a process restart.
type Manager struct {
	stores  *cache.Cache
	storage storage.SessionStorage
	fetch   PermissionFetchFunc
}

func NewManager(sessionStorage storage.SessionStorage, fetch PermissionFetchFunc) *Manager {
	return &Manager{
		stores:  cache.New(TokenExpiration, 1*time.Minute),
		storage: sessionStorage,
		fetch:   fetch,
	}
}

// Create builds the store of a fresh login.
func (m *Manager) Create(ctx context.Context, identity Identity, token string) (*Store, error) {
	store := NewStore(m.storage, m.fetch)
	if err := store.Login(ctx, identity, token); err != nil {
		return nil, err
	}
	m.stores.Set(token, store, cache.DefaultExpiration)
	return store, nil
}

// Resolve returns the live store for the token, restoring it from
// durable storage when the process no longer holds one. It returns nil
// when the token does not belong to a restorable session.
func (m *Manager) Resolve(ctx context.Context, token string) *Store {
	if token == "" {
		return nil
	}
	if value, found := m.stores.Get(token); found {
		if store, ok := value.(*Store); ok && store.Authenticated() {
			return store
		}
	}

	store := NewStore(m.storage, m.fetch)
	if !store.CheckAuth(ctx, token) {
		return nil
	}
	m.stores.Set(token, store, cache.DefaultExpiration)
	return store
}

// Discard is the logout teardown: the store resets, the durable slots
// clear, and the live entry disappears.
func (m *Manager) Discard(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if value, found := m.stores.Get(token); found {
		if store, ok := value.(*Store); ok {
			store.Logout(ctx)
		}
	} else {
		// not live; still clear the durable copy
		if err := m.storage.Delete(ctx, token); err != nil {
			common.Log.Errorf("failed to clear durable session %s: %v", token, err)
		}
	}
	m.stores.Delete(token)
}

// HandleAuthFailure funnels an authentication rejection from any
// backend call into the same teardown as an explicit logout.
func (m *Manager) HandleAuthFailure(ctx context.Context, token string) {
	common.Log.Warnf("authentication rejected upstream, terminating session")
	m.Discard(ctx, token)
}
