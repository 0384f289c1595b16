package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studytrack/backend/models"
	"studytrack/backend/storage"
)

func newTestStore(t *testing.T) (*storage.SlotStore, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	st, err := storage.NewSlotStore(db, nil)
	require.NoError(t, err)
	return st, db
}

func sampleRecord() *models.ProgressRecord {
	return &models.ProgressRecord{
		OwnerID:      "ana@med.com",
		CompletedIDs: []string{"1", "3"},
		TotalItems:   8,
		ByDiscipline: map[string]models.DisciplineProgress{
			"Anatomia": {Completed: 2, Total: 3, Percentage: 67},
		},
	}
}

func TestLoadMissingSlot(t *testing.T) {
	st, _ := newTestStore(t)

	rec, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, st.Save(sampleRecord()))
	got, err := st.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *sampleRecord(), *got)
}

func TestSaveOverwritesSlot(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, st.Save(sampleRecord()))

	updated := sampleRecord()
	updated.CompletedIDs = append(updated.CompletedIDs, "6")
	require.NoError(t, st.Save(updated))

	got, err := st.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"1", "3", "6"}, got.CompletedIDs)
}

func TestLoadMalformedPayloadIsAbsent(t *testing.T) {
	st, db := newTestStore(t)

	row := storage.ProgressSlot{
		Slot:      storage.DefaultSlot,
		Payload:   []byte(`{"totally": "unrelated"}`),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&row).Error)

	rec, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRemoveIsIdempotent(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, st.Save(sampleRecord()))
	require.NoError(t, st.Remove())

	rec, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, st.Remove())
}
