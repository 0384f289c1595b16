// Package storage persists the progress record in a single key-value
// slot, mirroring the one localStorage entry the original client used.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studytrack/backend/models"
	"studytrack/backend/progress"
)

// DefaultSlot is the record name of the current-progress slot.
const DefaultSlot = "study-progress"

// ProgressSlot is the table row backing one slot.
type ProgressSlot struct {
	Slot      string         `gorm:"primaryKey;size:64"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// SlotStore implements progress.RecordStore on a GORM database.
type SlotStore struct {
	db     *gorm.DB
	slot   string
	logger *log.Logger
}

// NewSlotStore migrates the slot table and returns a store bound to the
// default slot.
func NewSlotStore(db *gorm.DB, logger *log.Logger) (*SlotStore, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := db.AutoMigrate(&ProgressSlot{}); err != nil {
		return nil, fmt.Errorf("migrate progress slot: %w", err)
	}
	return &SlotStore{db: db, slot: DefaultSlot, logger: logger}, nil
}

// Load reads the slot. A missing row or a payload that does not decode
// into a progress record both report (nil, nil): the caller starts fresh
// instead of failing.
func (st *SlotStore) Load() (*models.ProgressRecord, error) {
	var row ProgressSlot
	err := st.db.Where("slot = ?", st.slot).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load: %v", progress.ErrPersistenceUnavailable, err)
	}

	var rec models.ProgressRecord
	if err := json.Unmarshal(row.Payload, &rec); err != nil || rec.OwnerID == "" {
		st.logger.Printf("storage: discarding malformed record in slot %q", st.slot)
		return nil, nil
	}
	return &rec, nil
}

// Save upserts the slot with the serialized record.
func (st *SlotStore) Save(rec *models.ProgressRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", progress.ErrPersistenceUnavailable, err)
	}

	row := ProgressSlot{Slot: st.slot, Payload: payload, UpdatedAt: time.Now()}
	err = st.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: save: %v", progress.ErrPersistenceUnavailable, err)
	}
	return nil
}

// Remove deletes the slot. Removing an absent slot is not an error.
func (st *SlotStore) Remove() error {
	if err := st.db.Where("slot = ?", st.slot).Delete(&ProgressSlot{}).Error; err != nil {
		return fmt.Errorf("%w: remove: %v", progress.ErrPersistenceUnavailable, err)
	}
	return nil
}
