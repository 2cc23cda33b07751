// Package auth implements the session gate: a two-account demo credential
// check and the lifecycle of the single persisted session record.
package auth

import (
	"sync"
	"time"

	"dental-center-server/internal/models"
	"dental-center-server/internal/repository"
)

// State is the gate's lifecycle state. The gate starts in StateLoading and
// must be resumed (a synchronous read of the persisted session) before any
// routed content is served.
type State int

const (
	StateLoading State = iota
	StateAnonymous
	StateAuthenticated
)

// account is one entry of the fixed demo allow-list.
type account struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      models.Role
}

// Demo credentials. Not real authentication: two literal accounts, compared
// in the clear.
var accounts = []account{
	{
		email:     "admin@dentalcenter.com",
		password:  "admin123",
		firstName: "Dr. John",
		lastName:  "Smith",
		role:      models.RoleAdmin,
	},
	{
		email:     "vikasgup074@gmail.com",
		password:  "12345678",
		firstName: "Dr. Vikas",
		lastName:  "Gupta",
		role:      models.RoleDentist,
	},
}

// Gate owns the session lifecycle. It is injected into handlers rather than
// held in package state, so tests can run gates side by side.
type Gate struct {
	sessions *repository.SessionRepository
	newID    func() string

	mu    sync.Mutex
	state State
	user  models.User
}

// NewGate creates a gate in StateLoading. newID generates session record
// identifiers.
func NewGate(sessions *repository.SessionRepository, newID func() string) *Gate {
	return &Gate{sessions: sessions, newID: newID, state: StateLoading}
}

// Resume reads any persisted session and settles the gate into
// StateAuthenticated or StateAnonymous. Call once at startup, before routes
// are served.
func (g *Gate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if user, ok := g.sessions.Get(); ok {
		g.user = user
		g.state = StateAuthenticated
		return
	}
	g.state = StateAnonymous
}

// Login checks the credential pair against the allow-list. On a match it
// persists a freshly stamped session record and reports true. A mismatch
// reports false with a nil error and leaves the gate untouched; the error is
// reserved for unexpected internal faults.
func (g *Gate) Login(email, password string) (bool, error) {
	for _, acct := range accounts {
		if acct.email != email || acct.password != password {
			continue
		}
		user := models.User{
			ID:        g.newID(),
			Email:     acct.email,
			FirstName: acct.firstName,
			LastName:  acct.lastName,
			Role:      acct.role,
			CreatedAt: time.Now().UTC(),
		}
		g.mu.Lock()
		g.sessions.Set(user)
		g.user = user
		g.state = StateAuthenticated
		g.mu.Unlock()
		return true, nil
	}
	return false, nil
}

// Logout clears the persisted session unconditionally.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions.Clear()
	g.user = models.User{}
	g.state = StateAnonymous
}

// Current returns the signed-in user when the gate is authenticated.
func (g *Gate) Current() (models.User, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateAuthenticated {
		return models.User{}, false
	}
	return g.user, true
}

// State returns the gate's lifecycle state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
