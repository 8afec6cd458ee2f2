package localstore

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vehicle-finance.backend/internal/domain/entities"
	"vehicle-finance.backend/internal/infrastructure/models"
	"vehicle-finance.backend/pkg/logger"
)

// LeadsKey is the versioned storage key for the lead collection blob.
// The v2 suffix guards against misreading an older incompatible schema.
const LeadsKey = "vfm_leads_data_v2"

// Store mirrors the full lead collection as one JSON blob. It is
// written synchronously after every repository mutation.
type Store struct {
	db  *gorm.DB
	key string
}

// New migrates the blob table and returns a store bound to LeadsKey
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.StorageBlob{}); err != nil {
		return nil, err
	}
	return &Store{db: db, key: LeadsKey}, nil
}

// Load reads and deserializes the stored collection. An absent or
// undecodable blob yields an empty collection, never an error: corrupt
// local data is treated as empty state.
func (s *Store) Load(ctx context.Context) []*entities.Lead {
	var blob models.StorageBlob
	err := s.db.WithContext(ctx).Where("key = ?", s.key).First(&blob).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn(ctx, "local store read failed, starting empty", zap.Error(err))
		}
		return []*entities.Lead{}
	}

	var leads []*entities.Lead
	if err := json.Unmarshal(blob.Value, &leads); err != nil {
		logger.Warn(ctx, "local store blob undecodable, starting empty", zap.Error(err))
		return []*entities.Lead{}
	}
	if leads == nil {
		leads = []*entities.Lead{}
	}
	return leads
}

// Save serializes and overwrites the stored blob. The write is total:
// a subsequent Load sees either the prior or the new collection.
func (s *Store) Save(ctx context.Context, leads []*entities.Lead) error {
	if leads == nil {
		leads = []*entities.Lead{}
	}
	value, err := json.Marshal(leads)
	if err != nil {
		return err
	}

	blob := models.StorageBlob{Key: s.key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

// Raw returns the stored blob bytes, or nil when absent
func (s *Store) Raw(ctx context.Context) []byte {
	var blob models.StorageBlob
	if err := s.db.WithContext(ctx).Where("key = ?", s.key).First(&blob).Error; err != nil {
		return nil
	}
	return blob.Value
}
