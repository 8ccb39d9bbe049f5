package polingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/polingest/jobs"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		// Verify components are initialized
		assert.NotNil(t, db.Store())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("in memory", func(t *testing.T) {
		db, err := NewDatabase("", WithInMemory())
		require.NoError(t, err)
		defer db.Close()
		assert.NotNil(t, db.Store())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, db)

	// Close the database
	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	db, err := NewDatabase("", WithInMemory())
	require.NoError(t, err)
	defer db.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
	})

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := db.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})

	t.Run("can create executor", func(t *testing.T) {
		exec, err := db.NewExecutor()
		require.NoError(t, err)
		exec.Release()
	})
}

func TestDatabase_EndToEnd(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "db"))
	require.NoError(t, err)
	defer db.Close()

	csv := "agent,company_name,category_name,userName,firstname,policy_number,policy_start_date\n" +
		"A1,Acme,Auto,jdoe,John,P-1,2024-05-01\n" +
		"A1,Acme,Home,jdoe,John,P-2,2024-06-01\n"
	path := filepath.Join(t.TempDir(), "upload.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	messages := make(chan jobs.Message, 1)
	exec, err := db.NewExecutor(jobs.WithNotify(func(m jobs.Message) { messages <- m }))
	require.NoError(t, err)

	job, err := exec.Submit(path)
	require.NoError(t, err)

	select {
	case msg := <-messages:
		require.True(t, msg.OK)
		assert.Equal(t, job.Id, msg.JobID)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for ingestion")
	}
	exec.Release()

	searcher, err := db.NewSearcher()
	require.NoError(t, err)
	found, err := searcher.PoliciesByUserName(context.Background(), "jdoe")
	require.NoError(t, err)
	require.Len(t, found.Policies, 2)
	assert.Equal(t, "Auto", found.Policies[0].LobName)
	assert.Equal(t, "Home", found.Policies[1].LobName)
	assert.Equal(t, "Acme", found.Policies[1].CarrierName)
}
