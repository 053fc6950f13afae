// Package gateway wraps the chat platform behind a narrow messaging
// capability so the relay, registry and decision engine never talk to the
// Slack API directly.
package gateway

import (
	"context"

	"github.com/slack-go/slack"
)

// Message is an inbound or historical message as seen by the core.
type Message struct {
	ChannelID string
	Timestamp string
	ThreadTS  string
	UserID    string
	BotID     string
	Text      string
}

// Outbound is a message to be posted. Text is always set; Blocks and
// Attachments optionally carry the rich rendering of the same content.
type Outbound struct {
	Text        string
	ThreadTS    string
	Blocks      []slack.Block
	Attachments []slack.Attachment
}

// Gateway is the messaging capability the core depends on.
type Gateway interface {
	// PostMessage posts into a channel or DM conversation, threading under
	// msg.ThreadTS when set. It returns the timestamp of the posted message.
	PostMessage(ctx context.Context, channelID string, msg Outbound) (string, error)

	// PostEphemeral posts a message only the given user can see.
	PostEphemeral(ctx context.Context, channelID, userID string, msg Outbound) error

	// OpenDM resolves the direct message conversation with a user.
	OpenDM(ctx context.Context, userID string) (string, error)

	// LatestBefore fetches the single most recent message in a conversation
	// at or before the given timestamp (an as-of lookup, not a scan).
	LatestBefore(ctx context.Context, channelID, ts string) (*Message, error)
}
