package models

import (
	"time"
)

// StorageBlob is one named durable blob. The lead collection lives in
// a single row under its versioned storage key, so an incompatible
// prior schema is never misread as current data.
type StorageBlob struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (StorageBlob) TableName() string {
	return "storage_blobs"
}
