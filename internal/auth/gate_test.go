package auth

import (
	"fmt"
	"testing"

	"dental-center-server/internal/models"
	"dental-center-server/internal/repository"
	"dental-center-server/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) (*Gate, *repository.SessionRepository) {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	sessions := repository.NewSessionRepository(store)
	counter := 0
	gate := NewGate(sessions, func() string {
		counter++
		return fmt.Sprintf("test-%d", counter)
	})
	return gate, sessions
}

func TestGateStartsLoading(t *testing.T) {
	gate, _ := newTestGate(t)
	assert.Equal(t, StateLoading, gate.State())

	_, ok := gate.Current()
	assert.False(t, ok)
}

func TestResumeWithoutSession(t *testing.T) {
	gate, _ := newTestGate(t)
	gate.Resume()
	assert.Equal(t, StateAnonymous, gate.State())
}

func TestResumeAdoptsPersistedSession(t *testing.T) {
	gate, sessions := newTestGate(t)
	sessions.Set(models.User{ID: "u1", Email: "admin@dentalcenter.com", Role: models.RoleAdmin})

	gate.Resume()

	assert.Equal(t, StateAuthenticated, gate.State())
	user, ok := gate.Current()
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLoginAdmin(t *testing.T) {
	gate, sessions := newTestGate(t)
	gate.Resume()

	ok, err := gate.Login("admin@dentalcenter.com", "admin123")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, StateAuthenticated, gate.State())
	user, ok := gate.Current()
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "Dr. John", user.FirstName)
	assert.Equal(t, "Smith", user.LastName)

	persisted, found := sessions.Get()
	require.True(t, found)
	assert.Equal(t, user, persisted)
}

func TestLoginDentist(t *testing.T) {
	gate, _ := newTestGate(t)
	gate.Resume()

	ok, err := gate.Login("vikasgup074@gmail.com", "12345678")
	require.NoError(t, err)
	require.True(t, ok)

	user, _ := gate.Current()
	assert.Equal(t, models.RoleDentist, user.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	gate, sessions := newTestGate(t)
	gate.Resume()

	cases := []struct{ email, password string }{
		{"x@x.com", "wrong"},
		{"admin@dentalcenter.com", "wrong"},
		{"unknown@dentalcenter.com", "admin123"},
	}
	for _, tc := range cases {
		ok, err := gate.Login(tc.email, tc.password)
		require.NoError(t, err)
		assert.False(t, ok, "credentials %s/%s should be rejected", tc.email, tc.password)
	}

	assert.Equal(t, StateAnonymous, gate.State())
	_, found := sessions.Get()
	assert.False(t, found)
}

func TestLogoutClearsSession(t *testing.T) {
	gate, sessions := newTestGate(t)
	gate.Resume()

	ok, err := gate.Login("admin@dentalcenter.com", "admin123")
	require.NoError(t, err)
	require.True(t, ok)

	gate.Logout()

	assert.Equal(t, StateAnonymous, gate.State())
	_, found := sessions.Get()
	assert.False(t, found)
	_, current := gate.Current()
	assert.False(t, current)
}
