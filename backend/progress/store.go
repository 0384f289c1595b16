// Package progress holds the progress-tracking state model: the
// authoritative completed-item set for the bound learner, the derived
// per-discipline statistics, and their persistence.
package progress

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"studytrack/backend/models"
)

// RecordStore is the single-slot persistence medium behind the store.
// Load reports a missing or unreadable record as (nil, nil); stale data
// never produces an error, only a fresh start.
type RecordStore interface {
	Load() (*models.ProgressRecord, error)
	Save(*models.ProgressRecord) error
	Remove() error
}

// Snapshot is the read model handed to the presentation layer: the record
// plus the catalog with each item's Completed field projected.
type Snapshot struct {
	Record models.ProgressRecord `json:"progress"`
	Items  []models.StudyItem    `json:"items"`
}

// KindStat is the per-content-kind slice of the dashboard breakdown.
type KindStat struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Overview aggregates the whole catalog for the dashboard: overall
// counts, the per-discipline table and the content-kind distribution.
type Overview struct {
	Completed   int                                  `json:"completed"`
	Total       int                                  `json:"total"`
	Percentage  int                                  `json:"percentage"`
	Disciplines map[string]models.DisciplineProgress `json:"byDiscipline"`
	Kinds       map[models.ItemKind]KindStat         `json:"byKind"`
}

// Store owns the one active ProgressRecord. All mutations flow through
// ToggleCompletion; every mutation persists synchronously before events
// are delivered.
type Store struct {
	records RecordStore
	logger  *log.Logger

	mu           sync.Mutex
	ready        bool
	rec          *models.ProgressRecord
	catalog      []models.StudyItem
	completed    map[string]bool
	listeners    map[int]Listener
	nextListener int
	saveFailures int
}

// NewStore creates an uninitialized store on top of the given persistence
// medium. Initialize must run before any other operation.
func NewStore(records RecordStore, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		records:   records,
		logger:    logger,
		listeners: make(map[int]Listener),
	}
}

// Initialize binds an identity and its resolved catalog. A persisted
// record is reused only when its owner matches the identity; anything
// else (missing, malformed, foreign owner) starts a fresh empty record.
// Reconciliation recomputes totals from the supplied catalog and prunes
// completed ids that no longer exist in it, so the aggregates always
// describe the catalog the learner actually sees.
func (s *Store) Initialize(identity models.Identity, catalog []models.StudyItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.records.Load()
	if err != nil {
		s.logger.Printf("progress: load failed, starting fresh: %v", err)
		loaded = nil
	}

	s.catalog = make([]models.StudyItem, len(catalog))
	copy(s.catalog, catalog)

	inCatalog := make(map[string]bool, len(catalog))
	for _, it := range s.catalog {
		inCatalog[it.ID] = true
	}

	s.completed = make(map[string]bool)
	var kept []string
	if loaded != nil && loaded.OwnerID == identity.ID {
		for _, id := range loaded.CompletedIDs {
			if inCatalog[id] && !s.completed[id] {
				s.completed[id] = true
				kept = append(kept, id)
			}
		}
	}

	s.rec = &models.ProgressRecord{
		OwnerID:      identity.ID,
		CompletedIDs: kept,
	}
	s.recompute()
	s.ready = true
	s.persist()
	return nil
}

// ToggleCompletion flips the completion state of a catalog item and
// returns the new state. The affected aggregates are recounted over the
// full catalog rather than adjusted incrementally, so they can never
// drift from the completed set.
func (s *Store) ToggleCompletion(itemID string) (bool, error) {
	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return false, ErrNotInitialized
	}

	var item *models.StudyItem
	for i := range s.catalog {
		if s.catalog[i].ID == itemID {
			item = &s.catalog[i]
			break
		}
	}
	if item == nil {
		s.mu.Unlock()
		return false, ErrUnknownItem
	}

	if s.completed[itemID] {
		delete(s.completed, itemID)
		for i, id := range s.rec.CompletedIDs {
			if id == itemID {
				s.rec.CompletedIDs = append(s.rec.CompletedIDs[:i], s.rec.CompletedIDs[i+1:]...)
				break
			}
		}
	} else {
		s.completed[itemID] = true
		s.rec.CompletedIDs = append(s.rec.CompletedIDs, itemID)
	}
	nowCompleted := s.completed[itemID]

	s.recompute()
	s.persist()

	event := CompletionChanged{
		EventID:    uuid.New(),
		ItemID:     itemID,
		ItemName:   item.Name,
		Completed:  nowCompleted,
		OccurredAt: time.Now(),
	}
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, l := range listeners {
		l(event)
	}
	return nowCompleted, nil
}

// CurrentSnapshot returns a copy of the record and the catalog with
// completion projected onto every item. Read-only.
func (s *Store) CurrentSnapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return Snapshot{}, ErrNotInitialized
	}

	items := make([]models.StudyItem, len(s.catalog))
	copy(items, s.catalog)
	for i := range items {
		items[i].Completed = s.completed[items[i].ID]
	}
	return Snapshot{Record: s.rec.Clone(), Items: items}, nil
}

// Overview derives the dashboard aggregates from the current state.
func (s *Store) Overview() (Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return Overview{}, ErrNotInitialized
	}

	ov := Overview{
		Completed:   len(s.rec.CompletedIDs),
		Total:       s.rec.TotalItems,
		Percentage:  percentage(len(s.rec.CompletedIDs), s.rec.TotalItems),
		Disciplines: s.rec.Clone().ByDiscipline,
		Kinds:       make(map[models.ItemKind]KindStat),
	}
	for _, it := range s.catalog {
		stat := ov.Kinds[it.Kind.Normalized()]
		stat.Total++
		if s.completed[it.ID] {
			stat.Completed++
		}
		ov.Kinds[it.Kind.Normalized()] = stat
	}
	return ov, nil
}

// Clear removes the persisted record belonging to the given identity and
// drops the in-memory state. Idempotent; records owned by a different
// identity are left untouched.
func (s *Store) Clear(identity models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.records.Load()
	if err != nil {
		s.logger.Printf("progress: load before clear failed: %v", err)
	}
	if loaded != nil && loaded.OwnerID == identity.ID {
		if err := s.records.Remove(); err != nil {
			s.logger.Printf("progress: remove failed: %v", err)
		}
	}
	s.unbindLocked()
	return nil
}

// Unbind drops the in-memory state without touching the persisted record.
// Used on logout so progress survives to the next login.
func (s *Store) Unbind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unbindLocked()
}

// PersistenceDegraded reports whether the last persistence write failed,
// meaning in-session progress may not survive a restart.
func (s *Store) PersistenceDegraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveFailures > 0
}

func (s *Store) unbindLocked() {
	s.ready = false
	s.rec = nil
	s.catalog = nil
	s.completed = nil
}

// recompute rebuilds TotalItems and the per-discipline table from the
// catalog and the completed set. Caller holds the lock.
func (s *Store) recompute() {
	s.rec.TotalItems = len(s.catalog)
	by := make(map[string]models.DisciplineProgress)
	for _, it := range s.catalog {
		dp := by[it.Discipline]
		dp.Total++
		if s.completed[it.ID] {
			dp.Completed++
		}
		by[it.Discipline] = dp
	}
	for d, dp := range by {
		dp.Percentage = percentage(dp.Completed, dp.Total)
		by[d] = dp
	}
	s.rec.ByDiscipline = by
}

// persist writes the record through the persistence medium. A failure
// keeps the in-memory state authoritative; the first failure in a row is
// logged as a one-time advisory. Caller holds the lock.
func (s *Store) persist() {
	if err := s.records.Save(s.rec); err != nil {
		s.saveFailures++
		if s.saveFailures == 1 {
			s.logger.Printf("progress: save failed, progress may not survive a restart: %v", err)
		}
		return
	}
	s.saveFailures = 0
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
