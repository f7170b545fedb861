package study

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flamesResource6/studyboard/internal/catalog"
	"github.com/flamesResource6/studyboard/internal/config"
	"github.com/flamesResource6/studyboard/internal/database"
)

func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func newTestService(db *database.Database) *Service {
	return NewService(db, catalog.Default(), config.DefaultBoard, config.DefaultStandard)
}

// newFallbackService builds a service with no database configured.
func newFallbackService() *Service {
	return newTestService(nil)
}
