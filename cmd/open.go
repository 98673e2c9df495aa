package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacticpad/go-corner-stats/internal/storage"
)

// openDB ensures the database directory exists and opens the store.
func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}
