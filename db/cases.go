package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/dylan-dingjan/bebetterbot/model"
)

// SaveCase inserts a new case record. The submission must already carry a
// minted case ID; anchor locations may still be empty at this point.
func SaveCase(sub *model.Submission) error {
	stmt, err := DB.Prepare(`INSERT INTO cases(
		case_id, submitter_id, title, description, platforms, status, created_at,
		dm_channel_id, dm_anchor_ts, review_anchor_ts
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	createdAt := sub.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}

	_, err = stmt.Exec(
		sub.CaseID, sub.SubmitterID, sub.Title, sub.Description,
		strings.Join(sub.Platforms, ", "), sub.Status, createdAt,
		sub.DMChannelID, sub.DMAnchorTS, sub.ReviewAnchorTS,
	)
	return err
}

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCase scans a row into a Submission struct.
func scanCase(scanner rowScanner) (*model.Submission, error) {
	var sub model.Submission
	var platforms string
	err := scanner.Scan(
		&sub.CaseID, &sub.SubmitterID, &sub.Title, &sub.Description, &platforms,
		&sub.Status, &sub.CreatedAt, &sub.DMChannelID, &sub.DMAnchorTS, &sub.ReviewAnchorTS,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Return nil, nil if no case is found
		}
		return nil, err
	}
	if platforms != "" {
		sub.Platforms = strings.Split(platforms, ", ")
	}
	return &sub, nil
}

// GetCase retrieves a case by its ID.
func GetCase(caseID string) (*model.Submission, error) {
	row := DB.QueryRow(`SELECT
		case_id, submitter_id, title, description, platforms, status, created_at,
		dm_channel_id, dm_anchor_ts, review_anchor_ts
	FROM cases WHERE case_id = ?`, caseID)

	return scanCase(row)
}

// UpdateCaseAnchors records the anchor message locations for a case.
func UpdateCaseAnchors(caseID, dmChannelID, dmAnchorTS, reviewAnchorTS string) error {
	_, err := DB.Exec(
		"UPDATE cases SET dm_channel_id = ?, dm_anchor_ts = ?, review_anchor_ts = ? WHERE case_id = ?",
		dmChannelID, dmAnchorTS, reviewAnchorTS, caseID,
	)
	return err
}

// SettleCase transitions a pending case to its terminal status. It returns
// false when the case was already settled; the guard in the WHERE clause is
// what enforces the transition-exactly-once rule.
func SettleCase(caseID, status string) (bool, error) {
	res, err := DB.Exec(
		"UPDATE cases SET status = ? WHERE case_id = ? AND status = ?",
		status, caseID, model.StatusPending,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
