package social

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/dylan-dingjan/bebetterbot/db"
	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/review"
)

// DecisionActionHandler feeds an Approve/Decline click into the review
// engine. The message the button lives on is the review anchor; its text and
// timestamp travel along so the engine can work without a case record.
func DecisionActionHandler(ctx context.Context, gw gateway.Gateway, cb *slack.InteractionCallback, action *slack.BlockAction) {
	engine := &review.Engine{
		GW:    gw,
		Cases: db.Store{},
	}

	anchor := gateway.Message{
		ChannelID: cb.Channel.ID,
		Timestamp: cb.Message.Timestamp,
		ThreadTS:  cb.Message.ThreadTimestamp,
		Text:      cb.Message.Text,
	}

	engine.Decide(ctx, action.Value, cb.User.ID, anchor)
}
