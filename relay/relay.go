// Package relay re-posts thread replies between a submitter's private
// conversation and the review channel thread linked by a shared case token.
package relay

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/logger"
	"github.com/dylan-dingjan/bebetterbot/metrics"
	"github.com/dylan-dingjan/bebetterbot/model"
	"github.com/dylan-dingjan/bebetterbot/utils"
)

// CaseStore is the subset of the case store the relay needs. A nil store or
// a miss is not an error; the relay falls back to scanning history.
type CaseStore interface {
	GetCase(caseID string) (*model.Submission, error)
}

// Relayer resolves the counterpart thread for a correlated message and
// re-posts the content there.
type Relayer struct {
	GW            gateway.Gateway
	Cases         CaseStore
	ReviewChannel string
}

// Relay processes one inbound message. All gateway failures are swallowed
// here: the attempt is abandoned with no retry and no user-visible error.
func (r *Relayer) Relay(ctx context.Context, ev model.RelayEvent) model.RelayOutcome {
	outcome := r.relay(ctx, ev)
	metrics.RelayOutcomes.WithLabelValues(string(outcome)).Inc()
	return outcome
}

func (r *Relayer) relay(ctx context.Context, ev model.RelayEvent) model.RelayOutcome {
	// Only thread replies are eligible. Top-level messages and messages
	// posted by bots (including our own anchors) are ignored.
	if ev.BotID != "" || ev.ThreadTS == "" || ev.ThreadTS == ev.Timestamp {
		return model.RelayIgnored
	}

	caseID, ok := utils.ExtractCaseID(ev.Text)
	if !ok {
		// The expected outcome for most messages; not a failure.
		return model.RelayIgnored
	}

	// Direction is determined by the conversation kind.
	fromDM := ev.ChannelIM
	if !fromDM && ev.ChannelID != r.ReviewChannel {
		return model.RelayIgnored
	}

	log := logger.Log.With(
		zap.String("event_id", uuid.NewString()),
		zap.String("case_id", caseID),
		zap.Bool("from_dm", fromDM),
	)

	var sub *model.Submission
	if r.Cases != nil {
		var err error
		sub, err = r.Cases.GetCase(caseID)
		if err != nil {
			log.Warn("case store lookup failed", zap.Error(err))
			sub = nil
		}
	}

	var anchorChannel, anchorTS string
	if fromDM {
		anchorChannel, anchorTS = r.resolveReviewAnchor(ctx, ev, caseID, sub, log)
	} else {
		anchorChannel, anchorTS = r.resolveDMAnchor(ctx, ev, caseID, sub, log)
	}
	if anchorTS == "" {
		log.Warn("no counterpart anchor found")
		return model.RelayNoAnchor
	}

	_, err := r.GW.PostMessage(ctx, anchorChannel, gateway.Outbound{
		Text:     fmt.Sprintf("<@%s>: %s", ev.UserID, ev.Text),
		ThreadTS: anchorTS,
	})
	if err != nil {
		log.Warn("relay post failed", zap.Error(err))
		return model.RelayTransportError
	}

	log.Info("message relayed", zap.String("to_channel", anchorChannel))
	return model.RelayDelivered
}

// resolveReviewAnchor finds the review-channel anchor for a DM-side message.
func (r *Relayer) resolveReviewAnchor(ctx context.Context, ev model.RelayEvent, caseID string, sub *model.Submission, log *zap.Logger) (string, string) {
	if sub != nil && sub.ReviewAnchorTS != "" {
		return r.ReviewChannel, sub.ReviewAnchorTS
	}

	// No case record: fall back to the as-of history lookup and accept the
	// candidate only if it carries the same literal token.
	candidate, err := r.GW.LatestBefore(ctx, r.ReviewChannel, ev.ThreadTS)
	if err != nil || candidate == nil {
		return "", ""
	}
	if id, ok := utils.ExtractCaseID(candidate.Text); !ok || id != caseID {
		return "", ""
	}
	return r.ReviewChannel, candidate.Timestamp
}

// resolveDMAnchor finds the submitter's private anchor for a review-channel
// message. Without a case record the submitter identity is recovered from
// the mention embedded in the review anchor text.
func (r *Relayer) resolveDMAnchor(ctx context.Context, ev model.RelayEvent, caseID string, sub *model.Submission, log *zap.Logger) (string, string) {
	if sub != nil && sub.DMChannelID != "" && sub.DMAnchorTS != "" {
		return sub.DMChannelID, sub.DMAnchorTS
	}

	// The thread parent in the review channel is the submission notice,
	// which always mentions the submitter.
	sourceAnchor, err := r.GW.LatestBefore(ctx, ev.ChannelID, ev.ThreadTS)
	if err != nil || sourceAnchor == nil {
		return "", ""
	}
	if id, ok := utils.ExtractCaseID(sourceAnchor.Text); !ok || id != caseID {
		return "", ""
	}
	submitterID, ok := utils.ExtractMention(sourceAnchor.Text)
	if !ok {
		log.Warn("review anchor carries no submitter mention")
		return "", ""
	}

	dmChannel, err := r.GW.OpenDM(ctx, submitterID)
	if err != nil {
		return "", ""
	}

	candidate, err := r.GW.LatestBefore(ctx, dmChannel, ev.ThreadTS)
	if err != nil || candidate == nil {
		return "", ""
	}
	if id, ok := utils.ExtractCaseID(candidate.Text); !ok || id != caseID {
		return "", ""
	}
	return dmChannel, candidate.Timestamp
}
