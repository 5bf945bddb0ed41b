package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string   `json:"id"`
	Text string   `json:"text"`
	Tags []string `json:"tags,omitempty"`
}

func (n *note) GetID() string   { return n.ID }
func (n *note) SetID(id string) { n.ID = id }

func openNoteStore(t *testing.T, dir string) *Store[note, *note] {
	t.Helper()
	s, err := Open[note, *note](filepath.Join(dir, "notes.json"))
	require.NoError(t, err)
	return s
}

func TestStoreAddAssignsDistinctIDs(t *testing.T) {
	s := openNoteStore(t, t.TempDir())

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		added, err := s.Add(note{Text: "x"})
		require.NoError(t, err)
		require.NotEmpty(t, added.ID)
		assert.False(t, seen[added.ID], "id %s assigned twice", added.ID)
		seen[added.ID] = true
	}
	assert.Equal(t, 50, s.Count())
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := openNoteStore(t, dir)

	first, err := s.Add(note{Text: "alpha", Tags: []string{"a", "b"}})
	require.NoError(t, err)
	second, err := s.Add(note{Text: "beta"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "notes.json"), s.Path())

	// A fresh instance over the same file must see exactly what was written.
	reopened, err := Open[note, *note](s.Path())
	require.NoError(t, err)
	require.Equal(t, 2, reopened.Count())

	got, err := reopened.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Text)
	assert.Equal(t, []string{"a", "b"}, got.Tags)

	got, err = reopened.GetByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "beta", got.Text)
}

func TestStoreGetByIDUnknown(t *testing.T) {
	s := openNoteStore(t, t.TempDir())

	_, err := s.GetByID("does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreUpdatePreservesUntouchedFields(t *testing.T) {
	s := openNoteStore(t, t.TempDir())

	added, err := s.Add(note{Text: "before", Tags: []string{"keep"}})
	require.NoError(t, err)

	updated, err := s.Update(added.ID, func(n *note) {
		n.Text = "after"
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Text)
	assert.Equal(t, []string{"keep"}, updated.Tags)
	assert.Equal(t, added.ID, updated.ID)

	_, err = s.Update("missing", func(n *note) { n.Text = "x" })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	s := openNoteStore(t, t.TempDir())

	added, err := s.Add(note{Text: "gone"})
	require.NoError(t, err)

	removed, err := s.Delete(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "gone", removed.Text)
	assert.Equal(t, 0, s.Count())

	_, err = s.Delete(added.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreGetAllReturnsSnapshot(t *testing.T) {
	s := openNoteStore(t, t.TempDir())

	_, err := s.Add(note{Text: "original"})
	require.NoError(t, err)

	all := s.GetAll()
	all[0].Text = "mutated"

	fresh := s.GetAll()
	assert.Equal(t, "original", fresh[0].Text)
}

func TestStoreCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open[note, *note](path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Count())

	// The store must be writable again after discarding the corrupt file.
	_, err = s.Add(note{Text: "fresh"})
	require.NoError(t, err)

	reopened, err := Open[note, *note](s.Path())
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Count())
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	s := openNoteStore(t, t.TempDir())
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.GetAll())
}

func TestStoreFindAndExists(t *testing.T) {
	s := openNoteStore(t, t.TempDir())

	for _, text := range []string{"a", "b", "a"} {
		_, err := s.Add(note{Text: text})
		require.NoError(t, err)
	}

	matches := s.Find(func(n note) bool { return n.Text == "a" })
	assert.Len(t, matches, 2)

	assert.True(t, s.Exists(func(n note) bool { return n.Text == "b" }))
	assert.False(t, s.Exists(func(n note) bool { return n.Text == "z" }))
}
