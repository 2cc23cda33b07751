package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	return store, dir
}

func TestListRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)

	want := []note{{ID: "1", Body: "first"}, {ID: "2", Body: "second"}}
	SetList(store, "notes", want)

	got := GetList[note](store, "notes")
	assert.Equal(t, want, got)
}

func TestGetListAbsentSlot(t *testing.T) {
	store, _ := openTestStore(t)

	got := GetList[note](store, "missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetListMalformedSlot(t *testing.T) {
	store, dir := openTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{not json"), 0o644))

	got := GetList[note](store, "notes")
	assert.Empty(t, got)
}

func TestGetListNullSlot(t *testing.T) {
	store, dir := openTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("null"), 0o644))

	got := GetList[note](store, "notes")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSetListReplacesPriorValue(t *testing.T) {
	store, _ := openTestStore(t)

	SetList(store, "notes", []note{{ID: "1"}, {ID: "2"}})
	SetList(store, "notes", []note{{ID: "3"}})

	got := GetList[note](store, "notes")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestValueRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)

	_, ok := GetValue[note](store, "current")
	assert.False(t, ok)

	SetValue(store, "current", note{ID: "9", Body: "session"})
	got, ok := GetValue[note](store, "current")
	require.True(t, ok)
	assert.Equal(t, note{ID: "9", Body: "session"}, got)
}

func TestGetValueMalformedSlot(t *testing.T) {
	store, dir := openTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "current.json"), []byte("???"), 0o644))

	_, ok := GetValue[note](store, "current")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	store, _ := openTestStore(t)

	SetValue(store, "current", note{ID: "9"})
	store.Clear("current")

	_, ok := GetValue[note](store, "current")
	assert.False(t, ok)

	// Clearing an absent slot is a no-op
	store.Clear("current")
}

func TestHasDistinguishesAbsentFromEmpty(t *testing.T) {
	store, _ := openTestStore(t)

	assert.False(t, store.Has("notes"))

	SetList(store, "notes", []note{})
	assert.True(t, store.Has("notes"))
	assert.Empty(t, GetList[note](store, "notes"))
}
