package repository

import (
	"time"

	"dental-center-server/internal/models"
	"dental-center-server/internal/storage"
)

// AppointmentRepository manages the appointments collection.
type AppointmentRepository struct {
	c collection[models.Appointment]
}

// NewAppointmentRepository creates an AppointmentRepository over the given store.
func NewAppointmentRepository(store *storage.Store) *AppointmentRepository {
	return &AppointmentRepository{c: collection[models.Appointment]{store: store, key: storage.KeyAppointments}}
}

// GetAll returns every appointment.
func (r *AppointmentRepository) GetAll() []models.Appointment {
	return r.c.All()
}

// GetByID returns the appointment with the given id.
func (r *AppointmentRepository) GetByID(id string) (models.Appointment, bool) {
	return r.c.Find(id)
}

// Add appends a fully populated appointment record.
func (r *AppointmentRepository) Add(a models.Appointment) {
	r.c.Add(a)
}

// Update merges the patch over the matching appointment and stamps UpdatedAt.
// The repository accepts any status value; transition legality is the
// caller's concern.
func (r *AppointmentRepository) Update(id string, patch models.AppointmentPatch) bool {
	return r.c.Update(id, func(a *models.Appointment) {
		patch.Apply(a)
		a.UpdatedAt = time.Now().UTC()
	})
}

// Delete removes the appointment with the given id.
func (r *AppointmentRepository) Delete(id string) {
	r.c.Delete(id)
}
