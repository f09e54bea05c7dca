package session

import (
	"context"
	"deskgate/bizerror"
	"deskgate/common"
	"deskgate/perm"
	"deskgate/storage"
	"encoding/json"
	"errors"
	"sync"

	"github.com/fundwit/go-commons/types"
)

var ErrNotAuthenticated = errors.New("session is not authenticated")
var ErrPermissionsUnavailable = errors.New("permissions unavailable")

// PermissionFetchFunc fetches the permission grant set of the session
// identified by token from the CRM backend.
type PermissionFetchFunc func(ctx context.Context, token string) (*perm.PermissionSet, error)

// Store is the single source of truth of one operator session: who is
// logged in and what they may do. All mutation goes through Login,
// Logout, CheckAuth and LoadPermissions. Durable storage is a
// write-through cache of the in-memory state; once hydrated, the
// in-memory state wins.
type Store struct {
	mutex   sync.Mutex
	storage storage.SessionStorage
	fetch   PermissionFetchFunc

	identity      Identity
	token         string
	authenticated bool
	perms         *perm.PermissionSet
	permsLoaded   bool

	// generation detects logout-while-fetching: a permission response
	// carrying a stale generation is discarded instead of applied.
	generation uint64
}

func NewStore(sessionStorage storage.SessionStorage, fetch PermissionFetchFunc) *Store {
	return &Store{storage: sessionStorage, fetch: fetch}
}

// Login establishes the session for the identity under the given token.
// Token and identity are durably written together before the first
// permission fetch, so the fetch always observes the new token.
// Permission loading failures do not fail the login; the store is left
// in whatever fallback tier LoadPermissions reached.
func (s *Store) Login(ctx context.Context, identity Identity, token string) error {
	identityJSON, err := json.Marshal(&identity)
	if err != nil {
		return err
	}
	record := storage.SessionRecord{
		Token:      token,
		Identity:   string(identityJSON),
		CreateTime: types.CurrentTimestamp(),
	}
	if err := s.storage.SaveSession(ctx, &record); err != nil {
		return err
	}

	s.mutex.Lock()
	s.identity = identity
	s.token = token
	s.authenticated = true
	s.perms = nil
	s.permsLoaded = false
	s.generation++
	s.mutex.Unlock()

	if _, err := s.LoadPermissions(ctx); err != nil {
		common.Log.Warnf("permissions not resolved at login for user %s: %v", identity.Name, err)
	}
	return nil
}

// Logout tears the session down locally: every durable slot of the
// session is cleared together and the in-memory state is reset. It
// never performs a network call, and it always takes effect even when
// durable storage is unavailable.
func (s *Store) Logout(ctx context.Context) {
	s.mutex.Lock()
	token := s.token
	s.identity = Identity{}
	s.token = ""
	s.authenticated = false
	s.perms = nil
	s.permsLoaded = false
	s.generation++
	s.mutex.Unlock()

	if token != "" {
		if err := s.storage.Delete(ctx, token); err != nil {
			common.Log.Errorf("failed to clear durable session %s: %v", token, err)
		}
	}
}

// CheckAuth restores the session from durable storage. The restore is
// optimistic: identity and token are rehydrated without a network round
// trip, then permissions are ensured (in-memory set, else durable
// cached set, else a fresh load). A corrupt stored identity invalidates
// the whole session instead of operating on partial state.
func (s *Store) CheckAuth(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	record, err := s.storage.Find(ctx, token)
	if err != nil {
		common.Log.Errorf("failed to read durable session: %v", err)
		return false
	}
	if record == nil {
		return false
	}

	identity := Identity{}
	if err := json.Unmarshal([]byte(record.Identity), &identity); err != nil {
		common.Log.Errorf("corrupt stored identity for session %s: %v", token, err)
		s.mutex.Lock()
		s.token = token
		s.mutex.Unlock()
		s.Logout(ctx)
		return false
	}

	s.mutex.Lock()
	s.identity = identity
	s.token = token
	s.authenticated = true
	s.generation++
	alreadyLoaded := s.permsLoaded && s.perms != nil
	s.mutex.Unlock()

	if alreadyLoaded {
		return true
	}

	if record.PermsLoaded && record.Permissions != "" {
		cached := perm.PermissionSet{}
		if err := json.Unmarshal([]byte(record.Permissions), &cached); err == nil {
			s.mutex.Lock()
			s.perms = &cached
			s.permsLoaded = true
			s.mutex.Unlock()
			return true
		}
		common.Log.Warnf("corrupt cached permissions for session %s, reloading", token)
	}

	if _, err := s.LoadPermissions(ctx); err != nil {
		common.Log.Warnf("permissions not resolved at session restore: %v", err)
	}
	return true
}

// LoadPermissions fetches the grant set from the CRM backend and makes
// it current, writing it through to the durable cache. On fetch failure
// it falls back to the durable cached set; when there is no cache and
// the failure is "endpoint not found" or "network unreachable" it
// installs the view-only degraded-mode set. Anything else leaves
// permissions absent and reports ErrPermissionsUnavailable.
// A response arriving after logout is discarded.
func (s *Store) LoadPermissions(ctx context.Context) (*perm.PermissionSet, error) {
	s.mutex.Lock()
	if !s.authenticated {
		s.mutex.Unlock()
		return nil, ErrNotAuthenticated
	}
	if s.permsLoaded && s.perms != nil {
		loaded := s.perms
		s.mutex.Unlock()
		return loaded, nil
	}
	token := s.token
	identity := s.identity
	generation := s.generation
	s.mutex.Unlock()

	fetched, fetchErr := s.fetch(ctx, token)

	s.mutex.Lock()
	if s.generation != generation || !s.authenticated {
		s.mutex.Unlock()
		return nil, ErrNotAuthenticated
	}

	if fetchErr == nil && fetched != nil {
		s.perms = fetched
		s.permsLoaded = true
		s.mutex.Unlock()

		if permsJSON, err := json.Marshal(fetched); err == nil {
			if err := s.storage.SavePermissions(ctx, token, string(permsJSON)); err != nil {
				common.Log.Errorf("failed to cache permissions for session %s: %v", token, err)
			}
		}
		return fetched, nil
	}
	s.mutex.Unlock()
	common.Log.Warnf("permission fetch failed for user %s: %v", identity.Name, fetchErr)

	// an authentication rejection anywhere tears the session down
	if errors.Is(fetchErr, bizerror.ErrUnauthenticated) {
		s.Logout(ctx)
		return nil, ErrNotAuthenticated
	}

	// second tier: the durable cached set of a previous successful load
	if record, err := s.storage.Find(ctx, token); err == nil && record != nil &&
		record.PermsLoaded && record.Permissions != "" {
		cached := perm.PermissionSet{}
		if err := json.Unmarshal([]byte(record.Permissions), &cached); err == nil {
			return s.adopt(&cached, generation)
		}
	}

	// third tier: the degraded-mode set, only when the permission
	// service itself is missing or unreachable
	if errors.Is(fetchErr, bizerror.ErrUpstreamNotFound) || errors.Is(fetchErr, bizerror.ErrUpstreamUnreachable) {
		common.Log.Warnf("permission service unavailable, degraded-mode permissions installed for user %s", identity.Name)
		return s.adopt(FallbackPermissions(identity), generation)
	}

	return nil, ErrPermissionsUnavailable
}

func (s *Store) adopt(set *perm.PermissionSet, generation uint64) (*perm.PermissionSet, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.generation != generation || !s.authenticated {
		return nil, ErrNotAuthenticated
	}
	s.perms = set
	s.permsLoaded = true
	return set, nil
}

// State returns a snapshot of the session.
func (s *Store) State() State {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return State{
		Identity:      s.identity,
		Token:         s.token,
		Authenticated: s.authenticated,
		Perms:         s.perms,
		PermsLoaded:   s.permsLoaded,
	}
}

func (s *Store) Authenticated() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.authenticated
}

// PermissionsResolved reports whether permission loading has reached a
// usable outcome (fresh, cached or degraded-mode set).
func (s *Store) PermissionsResolved() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.permsLoaded && s.perms != nil
}

// Permissions returns the current grant set, nil when unresolved.
func (s *Store) Permissions() *perm.PermissionSet {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.perms
}

func (s *Store) HasPermission(resource, action string) bool {
	return perm.HasPermission(s.Permissions(), resource, action)
}

func (s *Store) CanAccessResource(resource string) bool {
	return perm.CanAccessResource(s.Permissions(), resource)
}
