package social

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/config"
	"github.com/dylan-dingjan/bebetterbot/db"
	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/logger"
	"github.com/dylan-dingjan/bebetterbot/metrics"
	"github.com/dylan-dingjan/bebetterbot/model"
	"github.com/dylan-dingjan/bebetterbot/utils"
)

// ErrValidation marks a rejected intake form. It is reported to the user
// inline, never surfaced as a transport error.
var ErrValidation = errors.New("validation failure")

// Fields are the validated intake form values a submission is built from.
type Fields struct {
	SubmitterID string
	Title       string
	Description string
	Platforms   []string
}

// CreateSubmission validates the form fields and mints a new pending
// submission with a fresh case ID. It has no side effects beyond returning
// the record; posting is the caller's responsibility.
func CreateSubmission(fields Fields) (*model.Submission, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(fields.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if len(fields.Platforms) == 0 {
		return nil, fmt.Errorf("%w: select at least one platform", ErrValidation)
	}

	caseID, err := utils.GenerateCaseID()
	if err != nil {
		return nil, err
	}

	return &model.Submission{
		CaseID:      caseID,
		SubmitterID: fields.SubmitterID,
		Title:       strings.TrimSpace(fields.Title),
		Description: strings.TrimSpace(fields.Description),
		Platforms:   fields.Platforms,
		Status:      model.StatusPending,
		CreatedAt:   time.Now().Unix(),
	}, nil
}

// SocialPostCommandHandler DMs the requester the social post intake form.
func SocialPostCommandHandler(ctx context.Context, gw gateway.Gateway, cmd slack.SlashCommand) {
	dm, err := gw.OpenDM(ctx, cmd.UserID)
	if err != nil {
		return
	}

	_, err = gw.PostMessage(ctx, dm, gateway.Outbound{
		Text:   "Let's gather some details for the social post! 📲",
		Blocks: buildSocialFormBlocks(),
	})
	if err != nil {
		logger.Log.Warn("social form post failed", zap.Error(err))
	}
}

// SubmitSocialPostHandler turns a submitted form into a case: it mints the
// submission, posts the two anchor messages (submitter DM confirmation and
// review-channel notice with Approve/Decline buttons), and records the case
// with both anchor locations.
func SubmitSocialPostHandler(ctx context.Context, gw gateway.Gateway, cb *slack.InteractionCallback, action *slack.BlockAction) {
	fields := Fields{
		SubmitterID: cb.User.ID,
		Title:       stateValue(cb, "social_title", "title_input"),
		Description: stateValue(cb, "social_description", "description_input"),
		Platforms:   statePlatforms(cb, "social_platforms", "platforms_input"),
	}

	sub, err := CreateSubmission(fields)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			_ = gw.PostEphemeral(ctx, cb.Channel.ID, cb.User.ID, gateway.Outbound{
				Text: "⚠️ " + strings.TrimPrefix(err.Error(), "validation failure: "),
			})
			return
		}
		logger.Log.Error("submission creation failed", zap.Error(err))
		return
	}

	log := logger.Log.With(
		zap.String("case_id", sub.CaseID),
		zap.String("submitter", sub.SubmitterID),
	)

	// Record the case first; the anchor locations follow once the posts are
	// out. A case with empty anchors is still relayable through the history
	// fallback.
	if err := db.SaveCase(sub); err != nil {
		log.Warn("case save failed", zap.Error(err))
	}

	// Anchor 1: confirmation in the submitter's DM.
	dm, err := gw.OpenDM(ctx, sub.SubmitterID)
	if err != nil {
		return
	}
	dmTS, err := gw.PostMessage(ctx, dm, gateway.Outbound{
		Text: BuildConfirmationText(sub),
	})
	if err != nil {
		log.Warn("confirmation post failed", zap.Error(err))
		return
	}

	// Anchor 2: notice in the review channel with the decision buttons.
	reviewTS, err := gw.PostMessage(ctx, config.Cfg.Channels.SocialReviewChannelID, gateway.Outbound{
		Text:   BuildReviewNoticeText(sub),
		Blocks: BuildReviewNoticeBlocks(sub),
	})
	if err != nil {
		log.Warn("review notice post failed", zap.Error(err))
		return
	}

	sub.DMChannelID = dm
	sub.DMAnchorTS = dmTS
	sub.ReviewAnchorTS = reviewTS

	if err := db.UpdateCaseAnchors(sub.CaseID, dm, dmTS, reviewTS); err != nil {
		log.Warn("anchor update failed", zap.Error(err))
	}

	metrics.Submissions.Inc()
	log.Info("social post submitted")
}

// stateValue reads a typed input value out of the interaction state.
func stateValue(cb *slack.InteractionCallback, blockID, actionID string) string {
	if cb.BlockActionState == nil {
		return ""
	}
	if block, ok := cb.BlockActionState.Values[blockID]; ok {
		if action, ok := block[actionID]; ok {
			return action.Value
		}
	}
	return ""
}

// statePlatforms reads the selected platform labels out of the checkbox state.
func statePlatforms(cb *slack.InteractionCallback, blockID, actionID string) []string {
	if cb.BlockActionState == nil {
		return nil
	}
	block, ok := cb.BlockActionState.Values[blockID]
	if !ok {
		return nil
	}
	action, ok := block[actionID]
	if !ok {
		return nil
	}

	var platforms []string
	for _, opt := range action.SelectedOptions {
		if opt.Text != nil && opt.Text.Text != "" {
			platforms = append(platforms, opt.Text.Text)
		} else {
			platforms = append(platforms, opt.Value)
		}
	}
	return platforms
}
