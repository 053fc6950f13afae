package gateway

import (
	"context"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/logger"
	"github.com/dylan-dingjan/bebetterbot/metrics"
)

// SlackGateway implements Gateway against the Slack Web API.
type SlackGateway struct {
	client *slack.Client
}

// NewSlackGateway wraps an authenticated Slack client.
func NewSlackGateway(client *slack.Client) *SlackGateway {
	return &SlackGateway{client: client}
}

func (g *SlackGateway) PostMessage(ctx context.Context, channelID string, msg Outbound) (string, error) {
	opts := []slack.MsgOption{slack.MsgOptionText(msg.Text, false)}
	if msg.ThreadTS != "" {
		opts = append(opts, slack.MsgOptionTS(msg.ThreadTS))
	}
	if len(msg.Blocks) > 0 {
		opts = append(opts, slack.MsgOptionBlocks(msg.Blocks...))
	}
	if len(msg.Attachments) > 0 {
		opts = append(opts, slack.MsgOptionAttachments(msg.Attachments...))
	}

	_, ts, err := g.client.PostMessageContext(ctx, channelID, opts...)
	if err != nil {
		metrics.GatewayErrors.WithLabelValues("post_message").Inc()
		logger.Log.Warn("post message failed",
			zap.String("channel", channelID), zap.Error(err))
		return "", err
	}
	return ts, nil
}

func (g *SlackGateway) PostEphemeral(ctx context.Context, channelID, userID string, msg Outbound) error {
	opts := []slack.MsgOption{slack.MsgOptionText(msg.Text, false)}
	if msg.ThreadTS != "" {
		opts = append(opts, slack.MsgOptionTS(msg.ThreadTS))
	}
	_, err := g.client.PostEphemeralContext(ctx, channelID, userID, opts...)
	if err != nil {
		metrics.GatewayErrors.WithLabelValues("post_ephemeral").Inc()
		logger.Log.Warn("post ephemeral failed",
			zap.String("channel", channelID), zap.Error(err))
	}
	return err
}

func (g *SlackGateway) OpenDM(ctx context.Context, userID string) (string, error) {
	ch, _, _, err := g.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		metrics.GatewayErrors.WithLabelValues("open_dm").Inc()
		logger.Log.Warn("open dm failed", zap.String("user", userID), zap.Error(err))
		return "", err
	}
	return ch.ID, nil
}

func (g *SlackGateway) LatestBefore(ctx context.Context, channelID, ts string) (*Message, error) {
	resp, err := g.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Latest:    ts,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		metrics.GatewayErrors.WithLabelValues("history").Inc()
		logger.Log.Warn("history lookup failed",
			zap.String("channel", channelID), zap.Error(err))
		return nil, err
	}
	if len(resp.Messages) == 0 {
		return nil, nil
	}

	m := resp.Messages[0]
	return &Message{
		ChannelID: channelID,
		Timestamp: m.Timestamp,
		ThreadTS:  m.ThreadTimestamp,
		UserID:    m.User,
		BotID:     m.BotID,
		Text:      m.Text,
	}, nil
}
