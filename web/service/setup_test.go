package service

import (
	"path/filepath"
	"testing"

	"github.com/fzscripts/fzscripts/database"
	"github.com/fzscripts/fzscripts/logger"

	"github.com/op/go-logging"
)

// setupTestDB initializes the logger and a throwaway SQLite database, seeded
// with the bootstrap admin, for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	t.Setenv("FZS_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.WARNING)

	dbPath := filepath.Join(t.TempDir(), "fzscripts-test.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("InitDB() error = %v", err)
	}
	t.Cleanup(func() {
		if err := database.CloseDB(); err != nil {
			t.Logf("CloseDB() error = %v", err)
		}
	})
}
