package store

import (
	"path/filepath"
	"testing"

	"bistro-chat-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s, err := NewGormStore(db)
	require.NoError(t, err)
	return s, db
}

func TestGormStoreLoadWhenEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	profile, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGormStoreSaveLoad(t *testing.T) {
	s, _ := newTestStore(t)

	in := &models.UserProfile{
		Name: "Rahim", Phone: "01711", Address: "Dhanmondi",
		MemberSince: "Aug 2026", OrdersCount: 2,
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, out)
}

func TestGormStoreSaveOverwrites(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Save(&models.UserProfile{Name: "Rahim", OrdersCount: 1}))
	require.NoError(t, s.Save(&models.UserProfile{Name: "Rahim", OrdersCount: 2}))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, out.OrdersCount)

	var count int64
	s.db.Model(&ProfileRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGormStoreMalformedDataFailsOpen(t *testing.T) {
	s, db := newTestStore(t)

	require.NoError(t, db.Save(&ProfileRecord{Key: ProfileKey, Data: "{not json"}).Error)

	profile, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, profile)
}
