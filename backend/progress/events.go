package progress

import (
	"time"

	"github.com/google/uuid"
)

// CompletionChanged is emitted after every successful toggle. The
// presentation layer uses it for transient feedback (the original UI
// showed a toast); the store only guarantees delivery order matches
// mutation order.
type CompletionChanged struct {
	EventID    uuid.UUID `json:"eventId"`
	ItemID     string    `json:"itemId"`
	ItemName   string    `json:"itemName"`
	Completed  bool      `json:"completed"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Listener receives completion-changed events. Listeners run synchronously
// after the mutation has been persisted, outside the store's lock, so they
// may call back into the store.
type Listener func(CompletionChanged)

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l)
	}
	return out
}
