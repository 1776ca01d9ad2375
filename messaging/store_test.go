package messaging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessage(id string) Message {
	return Message{
		ID:          id,
		Recipient:   "+8615510010000",
		Scheme:      SchemeTel,
		Text:        "Hello 133!",
		ServiceType: "iMessage",
		SentAt:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Append(sampleMessage("a")))
	require.NoError(t, store.Append(sampleMessage("b")))
	assert.Error(t, store.Append(Message{}))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)

	list[0].ID = "mutated"
	again, _ := store.List()
	assert.Equal(t, "a", again[0].ID)
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(sampleMessage("a")))
	require.NoError(t, store.Append(sampleMessage("b")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	list, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	for i, id := range []string{"a", "b"} {
		want := sampleMessage(id)
		assert.Equal(t, want.ID, list[i].ID)
		assert.Equal(t, want.Recipient, list[i].Recipient)
		assert.Equal(t, want.Text, list[i].Text)
		assert.True(t, want.SentAt.Equal(list[i].SentAt))
	}
}

func TestFileStoreErrors(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = NewFileStore(path)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	store, err := NewFileStore(empty)
	require.NoError(t, err)
	list, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(sampleMessage("a")))
	require.NoError(t, store.Append(sampleMessage("b")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "history.json", entries[0].Name())
}

func TestFileStoreAppendFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(sampleMessage("a")))

	// A directory at the target path makes the rename fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0o600))

	assert.Error(t, store.Append(sampleMessage("b")))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStoreFailedAppendKeepsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(sampleMessage("a")))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Error(t, store.Append(Message{}))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
