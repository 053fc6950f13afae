package db

import (
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/logger"
)

// createTables creates the necessary tables in the database if they don't exist.
func createTables() {
	// SQL statement to create the 'cases' table. One row per submission,
	// keyed by the minted case token. Platforms are stored as a
	// comma-separated list, matching how they are rendered into messages.
	createCasesTableSQL := `
	CREATE TABLE IF NOT EXISTS cases (
		case_id TEXT PRIMARY KEY,
		submitter_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		platforms TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at INTEGER NOT NULL,
		dm_channel_id TEXT NOT NULL DEFAULT '',
		dm_anchor_ts TEXT NOT NULL DEFAULT '',
		review_anchor_ts TEXT NOT NULL DEFAULT ''
	);`

	_, err := DB.Exec(createCasesTableSQL)
	if err != nil {
		logger.Log.Fatal("failed to create cases table", zap.Error(err))
	}

	logger.Log.Info("database tables initialized")
}
