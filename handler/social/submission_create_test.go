package social

import (
	"regexp"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylan-dingjan/bebetterbot/model"
	"github.com/dylan-dingjan/bebetterbot/review"
	"github.com/dylan-dingjan/bebetterbot/utils"
)

func validFields() Fields {
	return Fields{
		SubmitterID: "U0SUBMITTER",
		Title:       "Launch Promo",
		Description: "Q4 campaign",
		Platforms:   []string{"TikTok", "Instagram"},
	}
}

func TestCreateSubmission(t *testing.T) {
	sub, err := CreateSubmission(validFields())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), sub.CaseID)
	assert.Equal(t, model.StatusPending, sub.Status)
	assert.Equal(t, "Launch Promo", sub.Title)
	assert.Equal(t, "Q4 campaign", sub.Description)
	assert.Equal(t, []string{"TikTok", "Instagram"}, sub.Platforms)
}

func TestCreateSubmissionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
	}{
		{"empty title", func(f *Fields) { f.Title = "" }},
		{"whitespace title", func(f *Fields) { f.Title = "   " }},
		{"empty description", func(f *Fields) { f.Description = "" }},
		{"no platforms", func(f *Fields) { f.Platforms = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)

			_, err := CreateSubmission(fields)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCaseTokenAppearsVerbatimInBothAnchors(t *testing.T) {
	sub, err := CreateSubmission(validFields())
	require.NoError(t, err)

	confirmation := BuildConfirmationText(sub)
	notice := BuildReviewNoticeText(sub)

	confirmID, ok := utils.ExtractCaseID(confirmation)
	require.True(t, ok)
	noticeID, ok := utils.ExtractCaseID(notice)
	require.True(t, ok)

	assert.Equal(t, sub.CaseID, confirmID)
	assert.Equal(t, sub.CaseID, noticeID)
}

func TestReviewNoticeContents(t *testing.T) {
	// Scenario from the intake flow: title "Launch Promo", description
	// "Q4 campaign", platforms TikTok + Instagram.
	sub, err := CreateSubmission(validFields())
	require.NoError(t, err)

	notice := BuildReviewNoticeText(sub)
	assert.Contains(t, notice, "*Title:* Launch Promo")
	assert.Contains(t, notice, "*Description:* Q4 campaign")
	assert.Contains(t, notice, "*Platforms:* TikTok, Instagram")
	assert.Contains(t, notice, "<@U0SUBMITTER>")

	confirmation := BuildConfirmationText(sub)
	assert.Regexp(t, regexp.MustCompile(`\*Case ID:\* [A-Z0-9]{8}`), confirmation)
	assert.Contains(t, confirmation, "Please send your video or photo in this thread.")
}

func TestReviewNoticeButtonsEncodeCaseID(t *testing.T) {
	sub, err := CreateSubmission(validFields())
	require.NoError(t, err)

	blocks := BuildReviewNoticeBlocks(sub)
	require.Len(t, blocks, 2)

	actions, ok := blocks[1].(*slack.ActionBlock)
	require.True(t, ok)
	require.Len(t, actions.Elements.ElementSet, 2)

	var values []string
	for _, el := range actions.Elements.ElementSet {
		btn, ok := el.(*slack.ButtonBlockElement)
		require.True(t, ok)
		values = append(values, btn.Value)

		decision, id, ok := review.ParseActionValue(btn.Value)
		require.True(t, ok)
		assert.Equal(t, sub.CaseID, id)
		assert.Contains(t, []string{review.Approve, review.Decline}, decision)
	}

	assert.Equal(t, review.ActionValue(review.Approve, sub.CaseID), values[0])
	assert.Equal(t, review.ActionValue(review.Decline, sub.CaseID), values[1])
}
