package store

import (
	"encoding/json"
	"errors"
	"log"

	"bistro-chat-api/models"

	"gorm.io/gorm"
)

// ProfileRecord is the storage row: the profile serialized as JSON
// under a fixed key, mirroring a key-value store.
type ProfileRecord struct {
	Key  string `gorm:"primaryKey"`
	Data string `gorm:"not null"`
}

// GormStore keeps the profile record in a GORM-managed database
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&ProfileRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load() (*models.UserProfile, error) {
	var rec ProfileRecord
	err := s.db.First(&rec, "key = ?", ProfileKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(rec.Data), &profile); err != nil {
		// Unparseable data fails open: behave as if no profile exists
		log.Printf("profile record is malformed, ignoring: %v", err)
		return nil, nil
	}
	return &profile, nil
}

func (s *GormStore) Save(profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	rec := ProfileRecord{Key: ProfileKey, Data: string(data)}
	return s.db.Save(&rec).Error
}
