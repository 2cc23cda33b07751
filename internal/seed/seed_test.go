package seed

import (
	"testing"

	"dental-center-server/internal/models"
	"dental-center-server/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestInitializeSeedsEmptyStore(t *testing.T) {
	store := newTestStore(t)

	Initialize(store)

	assert.Equal(t, DemoPatients, storage.GetList[models.Patient](store, storage.KeyPatients))
	assert.Equal(t, DemoServices, storage.GetList[models.Service](store, storage.KeyServices))
	assert.Equal(t, DemoAppointments, storage.GetList[models.Appointment](store, storage.KeyAppointments))
}

func TestInitializeIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	Initialize(store)
	Initialize(store)

	assert.Equal(t, DemoPatients, storage.GetList[models.Patient](store, storage.KeyPatients))
	assert.Equal(t, DemoServices, storage.GetList[models.Service](store, storage.KeyServices))
	assert.Equal(t, DemoAppointments, storage.GetList[models.Appointment](store, storage.KeyAppointments))
}

func TestInitializeLeavesExistingDataAlone(t *testing.T) {
	store := newTestStore(t)

	existing := []models.Patient{{ID: "custom", FirstName: "Only", LastName: "One"}}
	storage.SetList(store, storage.KeyPatients, existing)

	Initialize(store)

	// The written slot keeps its data; the untouched slots get seeded
	assert.Equal(t, existing, storage.GetList[models.Patient](store, storage.KeyPatients))
	assert.Equal(t, DemoServices, storage.GetList[models.Service](store, storage.KeyServices))
}

func TestInitializeTreatsEmptyListAsPresent(t *testing.T) {
	store := newTestStore(t)

	// Present-but-empty is not the same as absent
	storage.SetList(store, storage.KeyAppointments, []models.Appointment{})

	Initialize(store)

	assert.Empty(t, storage.GetList[models.Appointment](store, storage.KeyAppointments))
}
