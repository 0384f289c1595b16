// Package identity is the stand-in identity provider: a fixed directory
// of demo learners. In production this lookup would be the institution's
// identity service; the core never validates credentials itself.
package identity

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"studytrack/backend/models"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password. Callers must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

type entry struct {
	identity models.Identity
	hash     []byte
}

// Directory authenticates against the built-in learner table.
type Directory struct {
	entries map[string]entry
}

// NewDirectory builds the demo directory. Passwords are hashed at
// construction so Authenticate runs the same bcrypt comparison a real
// credential store would.
func NewDirectory() (*Directory, error) {
	seed := []struct {
		identity models.Identity
		password string
	}{
		{
			identity: models.Identity{
				ID:          "estudante@medicina.com",
				DisplayName: "Ana Silva",
				Institution: "Claretiano",
				Term:        3,
			},
			password: "medicina123",
		},
		{
			identity: models.Identity{
				ID:          "joao@medicina.com",
				DisplayName: "João Santos",
				Institution: "USP",
				Term:        2,
			},
			password: "medicina123",
		},
	}

	d := &Directory{entries: make(map[string]entry, len(seed))}
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		d.entries[s.identity.ID] = entry{identity: s.identity, hash: hash}
	}
	return d, nil
}

// Authenticate looks up the email and checks the password, returning the
// learner's identity on success.
func (d *Directory) Authenticate(email, password string) (models.Identity, error) {
	e, ok := d.entries[email]
	if !ok {
		return models.Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(e.hash, []byte(password)); err != nil {
		return models.Identity{}, ErrInvalidCredentials
	}
	return e.identity, nil
}
