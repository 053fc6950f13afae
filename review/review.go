// Package review interprets approve/decline actions on social post
// submissions and notifies both sides of the case.
package review

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/logger"
	"github.com/dylan-dingjan/bebetterbot/metrics"
	"github.com/dylan-dingjan/bebetterbot/model"
	"github.com/dylan-dingjan/bebetterbot/utils"
)

// Decision values carried in the action token.
const (
	Approve = "approve"
	Decline = "decline"
)

var actionValuePattern = regexp.MustCompile(`^decision:(approve|decline):([A-Z0-9]{8})$`)

// ParseActionValue splits a decision action token of the form
// `decision:{approve|decline}:{caseId}`.
func ParseActionValue(value string) (decision, caseID string, ok bool) {
	m := actionValuePattern.FindStringSubmatch(value)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ActionValue builds the decision token attached to a review button.
func ActionValue(decision, caseID string) string {
	return fmt.Sprintf("decision:%s:%s", decision, caseID)
}

// CaseStore is the subset of the case store the engine needs.
type CaseStore interface {
	GetCase(caseID string) (*model.Submission, error)
	SettleCase(caseID, status string) (bool, error)
}

// Engine drives the approve/decline workflow.
type Engine struct {
	GW    gateway.Gateway
	Cases CaseStore
}

// Decide handles one reviewer action. anchor is the review-channel message
// the clicked button was attached to; it is both the thread the status post
// goes into and, when no case record exists, the source the submitter
// identity is recovered from.
func (e *Engine) Decide(ctx context.Context, actionValue, reviewerID string, anchor gateway.Message) model.DecisionOutcome {
	outcome := e.decide(ctx, actionValue, reviewerID, anchor)
	metrics.Decisions.WithLabelValues(string(outcome)).Inc()
	return outcome
}

func (e *Engine) decide(ctx context.Context, actionValue, reviewerID string, anchor gateway.Message) model.DecisionOutcome {
	decision, caseID, ok := ParseActionValue(actionValue)
	if !ok {
		logger.Log.Warn("malformed decision action value", zap.String("value", actionValue))
		return model.DecisionInvalid
	}

	status := model.StatusApproved
	if decision == Decline {
		status = model.StatusDeclined
	}

	log := logger.Log.With(
		zap.String("case_id", caseID),
		zap.String("decision", decision),
		zap.String("reviewer", reviewerID),
	)

	var sub *model.Submission
	if e.Cases != nil {
		var err error
		sub, err = e.Cases.GetCase(caseID)
		if err != nil {
			log.Warn("case store lookup failed", zap.Error(err))
			sub = nil
		}
	}

	submitterID := ""
	threadTS := anchor.Timestamp
	if sub != nil {
		settled, err := e.Cases.SettleCase(caseID, status)
		if err != nil {
			// The transition was not recorded, so a later click could still
			// land the opposite decision. Do not tell anyone an outcome the
			// store does not hold.
			log.Warn("case settle failed", zap.Error(err))
			return model.DecisionAttempted
		}
		if !settled {
			// The case already has a terminal status. Tell the reviewer
			// quietly instead of re-notifying both sides.
			_ = e.GW.PostEphemeral(ctx, anchor.ChannelID, reviewerID, gateway.Outbound{
				Text: fmt.Sprintf("Case %s has already been decided.", caseID),
			})
			return model.DecisionAlreadyDecided
		}
		submitterID = sub.SubmitterID
		if sub.ReviewAnchorTS != "" {
			threadTS = sub.ReviewAnchorTS
		}
	} else {
		// No record of the case (e.g. it predates the database file).
		// Recover the submitter from the anchor mention and send the
		// notifications; repeat clicks cannot be detected on this path.
		submitterID, _ = utils.ExtractMention(anchor.Text)
	}

	attempted := false

	if submitterID != "" {
		if err := e.notifySubmitter(ctx, submitterID, caseID, status); err != nil {
			attempted = true
		}
	} else {
		log.Warn("submitter identity unavailable, skipping notification")
		attempted = true
	}

	if err := e.postStatusUpdate(ctx, anchor.ChannelID, threadTS, caseID, status, reviewerID); err != nil {
		attempted = true
	}

	if attempted {
		return model.DecisionAttempted
	}
	log.Info("decision recorded")
	return model.DecisionRecorded
}

func (e *Engine) notifySubmitter(ctx context.Context, submitterID, caseID, status string) error {
	dm, err := e.GW.OpenDM(ctx, submitterID)
	if err != nil {
		return err
	}

	var text string
	if status == model.StatusApproved {
		text = fmt.Sprintf("✅ Your social post has been approved! *Case ID:* %s", caseID)
	} else {
		text = fmt.Sprintf("❌ Your social post has been declined. *Case ID:* %s", caseID)
	}
	_, err = e.GW.PostMessage(ctx, dm, gateway.Outbound{Text: text})
	return err
}

func (e *Engine) postStatusUpdate(ctx context.Context, channelID, threadTS, caseID, status, reviewerID string) error {
	color := "good"
	emoji := "✅"
	if status == model.StatusDeclined {
		color = "danger"
		emoji = "❌"
	}
	text := fmt.Sprintf("%s Submission %s %s by <@%s>.",
		emoji, caseID, strings.ToUpper(status), reviewerID)

	_, err := e.GW.PostMessage(ctx, channelID, gateway.Outbound{
		Text:     text,
		ThreadTS: threadTS,
		Attachments: []slack.Attachment{{
			Color:    color,
			Text:     text,
			Fallback: text,
		}},
	})
	return err
}
