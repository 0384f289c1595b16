package catalog

import "studytrack/backend/models"

// Provider resolves the ordered study catalog for an (institution, term)
// pair. It is a pure lookup over a static table; callers always receive an
// independent copy they are free to annotate with completion state.
type Provider struct {
	table map[catalogKey][]models.StudyItem
}

type catalogKey struct {
	institution string
	term        int
}

// NewProvider returns a provider seeded with the built-in content table.
func NewProvider() *Provider {
	p := &Provider{table: make(map[catalogKey][]models.StudyItem)}
	for _, e := range seedCatalogs {
		p.table[catalogKey{e.institution, e.term}] = e.items
	}
	return p
}

// Resolve returns the catalog for the given institution and term, or an
// empty slice when no content is registered for the pair. The returned
// slice is a fresh copy on every call.
func (p *Provider) Resolve(institution string, term int) []models.StudyItem {
	src := p.table[catalogKey{institution, term}]
	items := make([]models.StudyItem, len(src))
	copy(items, src)
	for i := range items {
		items[i].Kind = items[i].Kind.Normalized()
		items[i].Completed = false
	}
	return items
}

// Disciplines returns the distinct discipline labels of a catalog in
// first-appearance order, for the filter dropdown.
func Disciplines(items []models.StudyItem) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if !seen[it.Discipline] {
			seen[it.Discipline] = true
			out = append(out, it.Discipline)
		}
	}
	return out
}
