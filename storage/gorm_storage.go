package storage

import (
	"context"
	"deskgate/persistence"

	"github.com/jinzhu/gorm"
)

// GormSessionStorage persists session records through the active gorm
// data source.
type GormSessionStorage struct {
	DS *persistence.DataSourceManager
}

func NewGormSessionStorage(ds *persistence.DataSourceManager) *GormSessionStorage {
	return &GormSessionStorage{DS: ds}
}

func (s *GormSessionStorage) SaveSession(ctx context.Context, record *SessionRecord) error {
	return s.DS.GormDB(ctx).Save(record).Error
}

func (s *GormSessionStorage) SavePermissions(ctx context.Context, token string, permissions string) error {
	db := s.DS.GormDB(ctx)
	return db.Model(&SessionRecord{}).Where(&SessionRecord{Token: token}).
		Updates(map[string]interface{}{"permissions": permissions, "perms_loaded": true}).Error
}

func (s *GormSessionStorage) Find(ctx context.Context, token string) (*SessionRecord, error) {
	record := SessionRecord{}
	if err := s.DS.GormDB(ctx).Where(&SessionRecord{Token: token}).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormSessionStorage) Delete(ctx context.Context, token string) error {
	return s.DS.GormDB(ctx).Where(&SessionRecord{Token: token}).Delete(&SessionRecord{}).Error
}
