package models

// DisciplineProgress is the per-discipline aggregate shown on the dashboard.
// Percentage is round-half-up of 100*Completed/Total, 0 for an empty group.
type DisciplineProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// ProgressRecord is the persisted progress aggregate, one per learner.
// OwnerID partitions records by identity: a record must never be served
// for any identity other than the one it was written for.
type ProgressRecord struct {
	OwnerID      string                        `json:"userId"`
	CompletedIDs []string                      `json:"completedItems"`
	TotalItems   int                           `json:"totalItems"`
	ByDiscipline map[string]DisciplineProgress `json:"progressByDiscipline"`
}

// Clone returns a deep copy so callers can hold a snapshot without
// aliasing the store's authoritative record.
func (r ProgressRecord) Clone() ProgressRecord {
	cp := r
	cp.CompletedIDs = append([]string(nil), r.CompletedIDs...)
	cp.ByDiscipline = make(map[string]DisciplineProgress, len(r.ByDiscipline))
	for d, p := range r.ByDiscipline {
		cp.ByDiscipline[d] = p
	}
	return cp
}
