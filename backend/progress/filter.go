package progress

import "studytrack/backend/models"

// Status filters items on their projected completion state.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

// ParseStatus validates a status query value. The empty string means no
// status filter.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case "", StatusCompleted, StatusPending:
		return Status(raw), true
	}
	return "", false
}

// FilterOptions selects a subset of the snapshot. Both filters are
// optional and compose as an intersection. Discipline "all" matches
// everything, same as leaving it empty.
type FilterOptions struct {
	Discipline string
	Status     Status
}

// FilterItems returns the items matching opts, preserving catalog order.
func FilterItems(items []models.StudyItem, opts FilterOptions) []models.StudyItem {
	out := make([]models.StudyItem, 0, len(items))
	for _, it := range items {
		if opts.Discipline != "" && opts.Discipline != "all" && it.Discipline != opts.Discipline {
			continue
		}
		switch opts.Status {
		case StatusCompleted:
			if !it.Completed {
				continue
			}
		case StatusPending:
			if it.Completed {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}
