package repository

import (
	"dental-center-server/internal/models"
	"dental-center-server/internal/storage"
)

// ServiceRepository manages the service catalog. Services carry no audit
// timestamps, so Update is a plain merge. Filtering by category or isActive
// happens at the call site, not here.
type ServiceRepository struct {
	c collection[models.Service]
}

// NewServiceRepository creates a ServiceRepository over the given store.
func NewServiceRepository(store *storage.Store) *ServiceRepository {
	return &ServiceRepository{c: collection[models.Service]{store: store, key: storage.KeyServices}}
}

// GetAll returns every service in the catalog.
func (r *ServiceRepository) GetAll() []models.Service {
	return r.c.All()
}

// GetByID returns the service with the given id.
func (r *ServiceRepository) GetByID(id string) (models.Service, bool) {
	return r.c.Find(id)
}

// Add appends a fully populated service record.
func (r *ServiceRepository) Add(s models.Service) {
	r.c.Add(s)
}

// Update merges the patch over the matching service.
func (r *ServiceRepository) Update(id string, patch models.ServicePatch) bool {
	return r.c.Update(id, func(s *models.Service) {
		patch.Apply(s)
	})
}

// Delete removes the service with the given id.
func (r *ServiceRepository) Delete(id string) {
	r.c.Delete(id)
}
