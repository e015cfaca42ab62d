package history

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RecordAndList(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordQuery("SELECT 1", platform.BigQuery, base))
	require.NoError(t, s.RecordQuery("SELECT 2", platform.Snowflake, base.Add(time.Minute)))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Most recent first.
	assert.Equal(t, "SELECT 2", entries[0].Query)
	assert.Equal(t, platform.Snowflake, entries[0].Platform)
	assert.Equal(t, "SELECT 1", entries[1].Query)
	assert.Equal(t, platform.BigQuery, entries[1].Platform)

	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestStore_ListEmpty(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Clear(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.RecordQuery("SELECT 1", platform.Databricks, time.Now()))
	require.NoError(t, s.Clear())

	entries, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Clearing an empty store is fine.
	assert.NoError(t, s.Clear())
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	path := t.TempDir() + "/history.db"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := Open(path, logger)
	require.NoError(t, err)
	require.NoError(t, s.RecordQuery("SELECT 1", platform.BigQuery, time.Now()))
	require.NoError(t, s.Close())

	reopened, err := Open(path, logger)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
