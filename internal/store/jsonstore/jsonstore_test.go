package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingKey(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Read("todos.json")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteThenRead(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write("todos.json", `[{"id":1,"title":"milk"}]`))

	v, ok, err := s.Read("todos.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1,"title":"milk"}]`, v)
}

func TestWriteOverwrites(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write("todos.json", "[]"))
	require.NoError(t, s.Write("todos.json", `[{"id":2,"title":"x"}]`))

	v, ok, err := s.Read("todos.json")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":2,"title":"x"}]`, v)
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
