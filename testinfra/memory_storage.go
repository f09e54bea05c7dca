package testinfra

import (
	"context"
	"deskgate/storage"
	"sync"
)

// MemorySessionStorage is an in-memory storage.SessionStorage for
// tests. Error fields, when set, are returned by the matching
// operation.
type MemorySessionStorage struct {
	mutex   sync.Mutex
	Records map[string]storage.SessionRecord

	SaveErr   error
	FindErr   error
	DeleteErr error
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{Records: map[string]storage.SessionRecord{}}
}

func (s *MemorySessionStorage) SaveSession(ctx context.Context, record *storage.SessionRecord) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Records[record.Token] = *record
	return nil
}

func (s *MemorySessionStorage) SavePermissions(ctx context.Context, token string, permissions string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	record, found := s.Records[token]
	if !found {
		return nil
	}
	record.Permissions = permissions
	record.PermsLoaded = true
	s.Records[token] = record
	return nil
}

func (s *MemorySessionStorage) Find(ctx context.Context, token string) (*storage.SessionRecord, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	record, found := s.Records[token]
	if !found {
		return nil, nil
	}
	return &record, nil
}

func (s *MemorySessionStorage) Delete(ctx context.Context, token string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Records, token)
	return nil
}

// Record returns a copy of the stored record, nil when absent.
func (s *MemorySessionStorage) Record(token string) *storage.SessionRecord {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	record, found := s.Records[token]
	if !found {
		return nil
	}
	return &record
}
