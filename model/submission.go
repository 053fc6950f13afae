package model

// Submission status values. A submission starts pending and transitions
// exactly once to approved or declined.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// Submission represents a social post submission record from the cases table.
type Submission struct {
	CaseID      string
	SubmitterID string
	Title       string
	Description string
	Platforms   []string
	Status      string
	CreatedAt   int64

	// Anchor locations. The DM anchor is the confirmation message in the
	// submitter's private conversation; the review anchor is the notice in
	// the review channel. Both embed the literal case token.
	DMChannelID    string
	DMAnchorTS     string
	ReviewAnchorTS string
}
