package social

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/dylan-dingjan/bebetterbot/model"
	"github.com/dylan-dingjan/bebetterbot/review"
)

// BuildConfirmationText renders the submitter-side anchor message. The case
// token must appear verbatim; the relay depends on it.
func BuildConfirmationText(sub *model.Submission) string {
	return fmt.Sprintf(
		"✅ Your social post has been submitted!\n\n*Title:* %s\n*Description:* %s\n*Platforms:* %s\n*Case ID:* %s\n\nPlease send your video or photo in this thread.",
		sub.Title, sub.Description, strings.Join(sub.Platforms, ", "), sub.CaseID,
	)
}

// BuildReviewNoticeText renders the review-channel anchor message. It always
// mentions the submitter; channel→DM relay recovers the identity from that
// mention when no case record exists.
func BuildReviewNoticeText(sub *model.Submission) string {
	return fmt.Sprintf(
		"New Social Post Submission:\n*Title:* %s\n*Description:* %s\n*Platforms:* %s\n*Submitted by:* <@%s>\n*Case ID:* %s\n\nPlease upload the post materials in this thread.",
		sub.Title, sub.Description, strings.Join(sub.Platforms, ", "), sub.SubmitterID, sub.CaseID,
	)
}

// BuildReviewNoticeBlocks renders the review anchor as blocks with the
// Approve/Decline buttons attached.
func BuildReviewNoticeBlocks(sub *model.Submission) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, BuildReviewNoticeText(sub), false, false),
			nil, nil,
		),
		slack.NewActionBlock("social_post_approval",
			decisionButton(review.Approve, "Approve", slack.StylePrimary, sub.CaseID),
			decisionButton(review.Decline, "Decline", slack.StyleDanger, sub.CaseID),
		),
	}
}

func decisionButton(decision, label string, style slack.Style, caseID string) *slack.ButtonBlockElement {
	value := review.ActionValue(decision, caseID)
	return slack.NewButtonBlockElement(value, value,
		slack.NewTextBlockObject(slack.PlainTextType, label, false, false)).
		WithStyle(style)
}
