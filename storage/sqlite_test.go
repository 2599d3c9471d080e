package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "history.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestOpenTwiceKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.RecordLevel(LevelResult{RunID: "run-1", Level: 0, Score: 40})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	results, err := store.TopLevelScores(0, 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRecordAndTopLevelScores(t *testing.T) {
	store := openTemp(t)

	for _, r := range []LevelResult{
		{RunID: "run-1", Level: 0, Score: 100, TimeLeft: 30 * time.Second},
		{RunID: "run-1", Level: 1, Score: 250},
		{RunID: "run-2", Level: 0, Score: 325, TimeLeft: 65 * time.Second},
		{RunID: "run-3", Level: 0, Score: 50},
	} {
		id, err := store.RecordLevel(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	results, err := store.TopLevelScores(0, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []int{325, 100, 50}, []int{results[0].Score, results[1].Score, results[2].Score})
	assert.Equal(t, "run-2", results[0].RunID)
	assert.Equal(t, 65*time.Second, results[0].TimeLeft)
	assert.False(t, results[0].FinishedAt.IsZero())

	limited, err := store.TopLevelScores(0, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	all, err := store.TopLevelScores(-1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, 325, all[0].Score)
}

func TestTopRuns(t *testing.T) {
	store := openTemp(t)

	for _, r := range []LevelResult{
		{RunID: "run-1", Level: 0, Score: 100},
		{RunID: "run-1", Level: 1, Score: 250},
		{RunID: "run-2", Level: 0, Score: 325},
	} {
		_, err := store.RecordLevel(r)
		require.NoError(t, err)
	}

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, RunTotal{RunID: "run-1", Levels: 2, Score: 350, LastPlay: runs[0].LastPlay}, runs[0])
	assert.Equal(t, "run-2", runs[1].RunID)
	assert.Equal(t, 325, runs[1].Score)
}

func TestRecordLevelRequiresRunID(t *testing.T) {
	store := openTemp(t)
	_, err := store.RecordLevel(LevelResult{Level: 0, Score: 10})
	assert.Error(t, err)
}

func TestEmptyHistory(t *testing.T) {
	store := openTemp(t)

	results, err := store.TopLevelScores(2, 5)
	require.NoError(t, err)
	assert.Empty(t, results)

	runs, err := store.TopRuns(5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
