// Package session sequences login, logout and identity switches against
// the catalog provider and the progress store, guaranteeing that progress
// is never read or written under the wrong identity.
package session

import (
	"log"
	"sync"

	"studytrack/backend/models"
	"studytrack/backend/progress"
)

// CatalogProvider resolves the study catalog for an identity's
// institution and term.
type CatalogProvider interface {
	Resolve(institution string, term int) []models.StudyItem
}

// Binder holds the single active identity and routes session transitions.
type Binder struct {
	catalogs CatalogProvider
	store    *progress.Store
	logger   *log.Logger

	mu      sync.Mutex
	current *models.Identity
}

func NewBinder(catalogs CatalogProvider, store *progress.Store, logger *log.Logger) *Binder {
	if logger == nil {
		logger = log.Default()
	}
	return &Binder{catalogs: catalogs, store: store, logger: logger}
}

// OnLogin binds an identity: resolve its catalog and initialize the
// progress store, reusing any persisted record for the same identity.
// Logging in again with the already-bound identity is a no-op, so no
// duplicate persistence write happens. Logging in as someone else takes
// the identity-switch path.
func (b *Binder) OnLogin(identity models.Identity) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current != nil {
		if b.current.ID == identity.ID {
			return nil
		}
		b.logoutLocked()
	}
	return b.loginLocked(identity)
}

// OnLogout clears the in-memory binding only. The persisted record is
// deliberately left in place and will be re-bound on the next login with
// the same identity.
func (b *Binder) OnLogout() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logoutLocked()
}

// OnIdentitySwitch rebinds to a new identity. Once the switch starts the
// store is never touched under the old identity again.
func (b *Binder) OnIdentitySwitch(identity models.Identity) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.logoutLocked()
	return b.loginLocked(identity)
}

// Current returns the bound identity, or nil when logged out.
func (b *Binder) Current() *models.Identity {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil
	}
	cp := *b.current
	return &cp
}

func (b *Binder) loginLocked(identity models.Identity) error {
	items := b.catalogs.Resolve(identity.Institution, identity.Term)
	if err := b.store.Initialize(identity, items); err != nil {
		return err
	}
	cp := identity
	b.current = &cp
	b.logger.Printf("session: bound %s (%s, term %d, %d items)",
		identity.ID, identity.Institution, identity.Term, len(items))
	return nil
}

func (b *Binder) logoutLocked() {
	if b.current == nil {
		return
	}
	b.logger.Printf("session: unbound %s", b.current.ID)
	b.current = nil
	b.store.Unbind()
}
