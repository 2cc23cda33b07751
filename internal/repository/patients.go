package repository

import (
	"time"

	"dental-center-server/internal/models"
	"dental-center-server/internal/storage"
)

// PatientRepository manages the patients collection.
type PatientRepository struct {
	c collection[models.Patient]
}

// NewPatientRepository creates a PatientRepository over the given store.
func NewPatientRepository(store *storage.Store) *PatientRepository {
	return &PatientRepository{c: collection[models.Patient]{store: store, key: storage.KeyPatients}}
}

// GetAll returns every patient.
func (r *PatientRepository) GetAll() []models.Patient {
	return r.c.All()
}

// GetByID returns the patient with the given id.
func (r *PatientRepository) GetByID(id string) (models.Patient, bool) {
	return r.c.Find(id)
}

// Add appends a fully populated patient record.
func (r *PatientRepository) Add(p models.Patient) {
	r.c.Add(p)
}

// Update merges the patch over the matching patient and stamps UpdatedAt.
// Unknown ids are a silent no-op; the return value reports whether a record
// was touched.
func (r *PatientRepository) Update(id string, patch models.PatientPatch) bool {
	return r.c.Update(id, func(p *models.Patient) {
		patch.Apply(p)
		p.UpdatedAt = time.Now().UTC()
	})
}

// Delete removes the patient with the given id.
func (r *PatientRepository) Delete(id string) {
	r.c.Delete(id)
}
