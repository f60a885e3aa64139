package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlot_RoundTrip(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "state", "user.json"))

	// Empty slot reads as absent.
	identity, err := slot.Load()
	require.NoError(t, err)
	assert.Nil(t, identity)

	saved := Identity{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, slot.Save(saved))

	identity, err = slot.Load()
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, saved, *identity)
}

func TestFileSlot_ClearIdempotent(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "user.json"))
	require.NoError(t, slot.Save(Identity{ID: "u1"}))

	require.NoError(t, slot.Clear())
	require.NoError(t, slot.Clear(), "clearing an absent slot is not an error")

	identity, err := slot.Load()
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestFileSlot_CorruptContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileSlot(path).Load()
	assert.Error(t, err)
}

func TestFileSlot_CorruptSlotMeansSignedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewUserStore(&stubAuthGateway{}, NewFileSlot(path), nil)
	assert.Nil(t, store.Current())
}

func TestMemorySlot_RoundTrip(t *testing.T) {
	slot := NewMemorySlot()

	identity, err := slot.Load()
	require.NoError(t, err)
	assert.Nil(t, identity)

	saved := Identity{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, slot.Save(saved))

	identity, err = slot.Load()
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, saved, *identity)

	require.NoError(t, slot.Clear())
	identity, err = slot.Load()
	require.NoError(t, err)
	assert.Nil(t, identity)
}
