package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/logger"
)

const dbDriver = "sqlite3"

// DB is the global database connection pool.
var DB *sql.DB

// InitDB initializes the SQLite database and creates tables if they don't exist.
func InitDB(path string) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Log.Fatal("failed to create database directory", zap.Error(err))
		}
	}

	var err error
	DB, err = sql.Open(dbDriver, path)
	if err != nil {
		logger.Log.Fatal("failed to open database", zap.Error(err))
	}

	// createTables is defined in migrate.go
	createTables()

	logger.Log.Info("database initialized", zap.String("path", path))
}
