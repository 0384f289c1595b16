package models

// ItemKind classifies a study item for the dashboard breakdown.
type ItemKind string

const (
	KindVideo    ItemKind = "video"
	KindExercise ItemKind = "exercise"
	KindReading  ItemKind = "reading"
)

// Normalized maps unknown kinds to KindVideo so rendering never has to
// deal with values outside the closed set.
func (k ItemKind) Normalized() ItemKind {
	switch k {
	case KindVideo, KindExercise, KindReading:
		return k
	}
	return KindVideo
}

// StudyItem is one learnable unit of a learner's catalog. Everything but
// Completed is immutable once the catalog is resolved; Completed is a
// projection of the progress record's completed set.
type StudyItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Discipline  string   `json:"discipline"`
	Week        int      `json:"week"`
	Kind        ItemKind `json:"type"`
	ResourceURL string   `json:"resourceUrl"`
	Completed   bool     `json:"completed"`
}

// Identity is the authenticated learner. ID (the email) doubles as the
// catalog lookup key owner and the progress record partition key.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	Institution string `json:"institution"`
	Term        int    `json:"term"`
}
