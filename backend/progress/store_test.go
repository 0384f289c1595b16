package progress_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/backend/models"
	"studytrack/backend/progress"
)

// memStore is an in-memory RecordStore with failure injection.
type memStore struct {
	rec      *models.ProgressRecord
	saves    int
	failSave bool
	failLoad bool
}

func (m *memStore) Load() (*models.ProgressRecord, error) {
	if m.failLoad {
		return nil, errors.New("read error")
	}
	if m.rec == nil {
		return nil, nil
	}
	cp := m.rec.Clone()
	return &cp, nil
}

func (m *memStore) Save(rec *models.ProgressRecord) error {
	if m.failSave {
		return errors.New("write error")
	}
	m.saves++
	cp := rec.Clone()
	m.rec = &cp
	return nil
}

func (m *memStore) Remove() error {
	m.rec = nil
	return nil
}

var (
	ana  = models.Identity{ID: "ana@med.com", DisplayName: "Ana", Institution: "Claretiano", Term: 3}
	joao = models.Identity{ID: "joao@med.com", DisplayName: "João", Institution: "USP", Term: 2}
)

// Three items, two in Anatomy and one in Physiology.
func testCatalog() []models.StudyItem {
	return []models.StudyItem{
		{ID: "a1", Name: "Heart Anatomy", Discipline: "Anatomy", Week: 1, Kind: models.KindVideo},
		{ID: "a2", Name: "Lung Anatomy", Discipline: "Anatomy", Week: 2, Kind: models.KindExercise},
		{ID: "p1", Name: "Cardiac Cycle", Discipline: "Physiology", Week: 1, Kind: models.KindVideo},
	}
}

func newStore(rs progress.RecordStore) *progress.Store {
	return progress.NewStore(rs, nil)
}

func TestToggleBeforeInitialize(t *testing.T) {
	s := newStore(&memStore{})

	_, err := s.ToggleCompletion("a1")
	assert.ErrorIs(t, err, progress.ErrNotInitialized)

	_, err = s.CurrentSnapshot()
	assert.ErrorIs(t, err, progress.ErrNotInitialized)
}

func TestInitializeFreshRecord(t *testing.T) {
	mem := &memStore{}
	s := newStore(mem)
	require.NoError(t, s.Initialize(ana, testCatalog()))

	snap, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, ana.ID, snap.Record.OwnerID)
	assert.Equal(t, 3, snap.Record.TotalItems)
	assert.Empty(t, snap.Record.CompletedIDs)
	assert.Equal(t, models.DisciplineProgress{Completed: 0, Total: 2, Percentage: 0}, snap.Record.ByDiscipline["Anatomy"])
	assert.Equal(t, models.DisciplineProgress{Completed: 0, Total: 1, Percentage: 0}, snap.Record.ByDiscipline["Physiology"])

	// Initialization persists the fresh record.
	require.NotNil(t, mem.rec)
	assert.Equal(t, ana.ID, mem.rec.OwnerID)
}

func TestInitializeIsIdempotent(t *testing.T) {
	s := newStore(&memStore{})
	require.NoError(t, s.Initialize(ana, testCatalog()))
	first, err := s.CurrentSnapshot()
	require.NoError(t, err)

	require.NoError(t, s.Initialize(ana, testCatalog()))
	second, err := s.CurrentSnapshot()
	require.NoError(t, err)

	assert.Equal(t, first.Record, second.Record)
	assert.Equal(t, first.Items, second.Items)
}

func TestToggleIsATrueFlip(t *testing.T) {
	s := newStore(&memStore{})
	require.NoError(t, s.Initialize(ana, testCatalog()))
	before, err := s.CurrentSnapshot()
	require.NoError(t, err)

	completed, err := s.ToggleCompletion("a1")
	require.NoError(t, err)
	assert.True(t, completed)

	completed, err = s.ToggleCompletion("a1")
	require.NoError(t, err)
	assert.False(t, completed)

	after, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, before.Record, after.Record)
	assert.Equal(t, before.Items, after.Items)
}

func TestAggregateConsistency(t *testing.T) {
	s := newStore(&memStore{})
	require.NoError(t, s.Initialize(ana, testCatalog()))

	for _, id := range []string{"a1", "p1", "a2", "a1", "p1", "p1"} {
		_, err := s.ToggleCompletion(id)
		require.NoError(t, err)
	}

	snap, err := s.CurrentSnapshot()
	require.NoError(t, err)

	inSet := make(map[string]bool)
	for _, id := range snap.Record.CompletedIDs {
		assert.False(t, inSet[id], "duplicate completed id %s", id)
		inSet[id] = true
	}
	for d, dp := range snap.Record.ByDiscipline {
		wantTotal, wantCompleted := 0, 0
		for _, it := range snap.Items {
			if it.Discipline != d {
				continue
			}
			wantTotal++
			if inSet[it.ID] {
				wantCompleted++
			}
		}
		assert.Equal(t, wantTotal, dp.Total, d)
		assert.Equal(t, wantCompleted, dp.Completed, d)
	}
}

func TestPercentageRounding(t *testing.T) {
	catalog := []models.StudyItem{
		{ID: "h1", Name: "Tissues I", Discipline: "Histology"},
		{ID: "h2", Name: "Tissues II", Discipline: "Histology"},
		{ID: "h3", Name: "Tissues III", Discipline: "Histology"},
	}
	s := newStore(&memStore{})
	require.NoError(t, s.Initialize(ana, catalog))

	_, err := s.ToggleCompletion("h1")
	require.NoError(t, err)

	snap, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, 33, snap.Record.ByDiscipline["Histology"].Percentage)
}

func TestUnknownItemIsNoOp(t *testing.T) {
	s := newStore(&memStore{})
	require.NoError(t, s.Initialize(ana, testCatalog()))
	before, err := s.CurrentSnapshot()
	require.NoError(t, err)

	_, err = s.ToggleCompletion("does-not-exist")
	assert.ErrorIs(t, err, progress.ErrUnknownItem)

	after, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, before.Record, after.Record)
}

func TestEmptyCatalog(t *testing.T) {
	s := newStore(&memStore{})
	require.NoError(t, s.Initialize(ana, nil))

	snap, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Record.TotalItems)
	assert.Empty(t, snap.Record.ByDiscipline)
	assert.Empty(t, snap.Items)

	ov, err := s.Overview()
	require.NoError(t, err)
	assert.Equal(t, 0, ov.Percentage)
}

func TestCrossIdentityStartsFresh(t *testing.T) {
	mem := &memStore{}
	s := newStore(mem)
	require.NoError(t, s.Initialize(ana, testCatalog()))
	_, err := s.ToggleCompletion("a1")
	require.NoError(t, err)

	// Rebinding under another identity must never surface Ana's progress.
	require.NoError(t, s.Initialize(joao, testCatalog()))
	snap, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, joao.ID, snap.Record.OwnerID)
	assert.Empty(t, snap.Record.CompletedIDs)
	for _, it := range snap.Items {
		assert.False(t, it.Completed, it.ID)
	}
}

func TestStaleCompletedIDsArePruned(t *testing.T) {
	mem := &memStore{rec: &models.ProgressRecord{
		OwnerID:      ana.ID,
		CompletedIDs: []string{"a1", "removed-item", "a1"},
	}}
	s := newStore(mem)
	require.NoError(t, s.Initialize(ana, testCatalog()))

	snap, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, snap.Record.CompletedIDs)
	assert.Equal(t, models.DisciplineProgress{Completed: 1, Total: 2, Percentage: 50}, snap.Record.ByDiscipline["Anatomy"])
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	mem := &memStore{}
	s := newStore(mem)
	require.NoError(t, s.Initialize(ana, testCatalog()))

	mem.failSave = true
	completed, err := s.ToggleCompletion("a1")
	require.NoError(t, err)
	assert.True(t, completed)
	assert.True(t, s.PersistenceDegraded())

	snap, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, snap.Record.CompletedIDs)

	// The medium recovering clears the advisory.
	mem.failSave = false
	_, err = s.ToggleCompletion("a2")
	require.NoError(t, err)
	assert.False(t, s.PersistenceDegraded())
}

func TestLoadFailureStartsFresh(t *testing.T) {
	mem := &memStore{failLoad: true}
	s := newStore(mem)
	require.NoError(t, s.Initialize(ana, testCatalog()))

	snap, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.Record.CompletedIDs)
	assert.Equal(t, 3, snap.Record.TotalItems)
}

func TestCompletionEvents(t *testing.T) {
	s := newStore(&memStore{})
	require.NoError(t, s.Initialize(ana, testCatalog()))

	var events []progress.CompletionChanged
	unsubscribe := s.Subscribe(func(ev progress.CompletionChanged) {
		events = append(events, ev)
	})

	_, err := s.ToggleCompletion("a1")
	require.NoError(t, err)
	_, err = s.ToggleCompletion("a1")
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "a1", events[0].ItemID)
	assert.Equal(t, "Heart Anatomy", events[0].ItemName)
	assert.True(t, events[0].Completed)
	assert.False(t, events[1].Completed)
	assert.NotEqual(t, events[0].EventID, events[1].EventID)

	unsubscribe()
	_, err = s.ToggleCompletion("a2")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestClear(t *testing.T) {
	mem := &memStore{}
	s := newStore(mem)
	require.NoError(t, s.Initialize(ana, testCatalog()))
	_, err := s.ToggleCompletion("a1")
	require.NoError(t, err)

	require.NoError(t, s.Clear(ana))
	assert.Nil(t, mem.rec)

	_, err = s.CurrentSnapshot()
	assert.ErrorIs(t, err, progress.ErrNotInitialized)

	// Idempotent.
	require.NoError(t, s.Clear(ana))
}

func TestClearLeavesForeignRecord(t *testing.T) {
	mem := &memStore{rec: &models.ProgressRecord{OwnerID: joao.ID, CompletedIDs: []string{"9"}}}
	s := newStore(mem)

	require.NoError(t, s.Clear(ana))
	require.NotNil(t, mem.rec)
	assert.Equal(t, joao.ID, mem.rec.OwnerID)
}

func TestEndToEndScenario(t *testing.T) {
	s := newStore(&memStore{})
	require.NoError(t, s.Initialize(ana, testCatalog()))

	snap, err := s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, models.DisciplineProgress{Completed: 0, Total: 2, Percentage: 0}, snap.Record.ByDiscipline["Anatomy"])
	assert.Equal(t, models.DisciplineProgress{Completed: 0, Total: 1, Percentage: 0}, snap.Record.ByDiscipline["Physiology"])

	_, err = s.ToggleCompletion("a1")
	require.NoError(t, err)
	snap, err = s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, models.DisciplineProgress{Completed: 1, Total: 2, Percentage: 50}, snap.Record.ByDiscipline["Anatomy"])

	_, err = s.ToggleCompletion("p1")
	require.NoError(t, err)
	snap, err = s.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, models.DisciplineProgress{Completed: 1, Total: 1, Percentage: 100}, snap.Record.ByDiscipline["Physiology"])

	ov, err := s.Overview()
	require.NoError(t, err)
	assert.Equal(t, 2, ov.Completed)
	assert.Equal(t, 3, ov.Total)
	assert.Equal(t, 67, ov.Percentage)
}

func TestOverviewKindBreakdown(t *testing.T) {
	s := newStore(&memStore{})
	require.NoError(t, s.Initialize(ana, testCatalog()))
	_, err := s.ToggleCompletion("a2")
	require.NoError(t, err)

	ov, err := s.Overview()
	require.NoError(t, err)
	assert.Equal(t, progress.KindStat{Total: 2, Completed: 0}, ov.Kinds[models.KindVideo])
	assert.Equal(t, progress.KindStat{Total: 1, Completed: 1}, ov.Kinds[models.KindExercise])
}
