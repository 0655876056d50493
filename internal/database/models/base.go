package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// SyncMeta carries the synchronization state attached to every record
// that is reconciled against the remote store. Only the entity's service
// layer may write these fields.
//
// RemoteID stays empty until the first successful remote create.
// IsSynced is true only while the cached state matches the remote state.
// IsDeleted marks a soft delete awaiting remote confirmation; confirmed
// deletions are hard-deleted from the cache, so a record never remains
// deleted-and-unsynced without being eligible for the next push pass.
type SyncMeta struct {
	RemoteID  string `json:"remote_id" gorm:"size:64;index"`
	IsSynced  bool   `json:"is_synced" gorm:"index"`
	IsDeleted bool   `json:"is_deleted"`
}

// MarkDirty flags a local edit that still has to reach the remote store.
func (m *SyncMeta) MarkDirty() {
	m.IsSynced = false
}

// MarkSynced records a successful remote write, optionally storing the
// remote id returned by a create.
func (m *SyncMeta) MarkSynced(remoteID string) {
	if remoteID != "" {
		m.RemoteID = remoteID
	}
	m.IsSynced = true
}
