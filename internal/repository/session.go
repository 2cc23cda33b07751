package repository

import (
	"dental-center-server/internal/models"
	"dental-center-server/internal/storage"
)

// SessionRepository persists the single current-user record. Absence of the
// slot means logged out.
type SessionRepository struct {
	store *storage.Store
}

// NewSessionRepository creates a SessionRepository over the given store.
func NewSessionRepository(store *storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get returns the persisted session, if any.
func (r *SessionRepository) Get() (models.User, bool) {
	return storage.GetValue[models.User](r.store, storage.KeySessionUser)
}

// Set persists the session record, replacing any prior one.
func (r *SessionRepository) Set(user models.User) {
	storage.SetValue(r.store, storage.KeySessionUser, user)
}

// Clear removes the session record unconditionally.
func (r *SessionRepository) Clear() {
	r.store.Clear(storage.KeySessionUser)
}
