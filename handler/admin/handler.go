package admin

import (
	"context"
	"strings"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/config"
	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/logger"
)

// AdminCommandHandler gates the admin menu behind the shared password. The
// password is the full command text; anything else gets an inline error.
func AdminCommandHandler(ctx context.Context, gw gateway.Gateway, cmd slack.SlashCommand) {
	if strings.TrimSpace(cmd.Text) != config.Cfg.AdminPassword {
		_ = gw.PostEphemeral(ctx, cmd.ChannelID, cmd.UserID, gateway.Outbound{
			Text: "❌ Incorrect password. Please try again.",
		})
		return
	}

	_, err := gw.PostMessage(ctx, cmd.ChannelID, gateway.Outbound{
		Text:   "Admin Actions:",
		Blocks: buildMenuBlocks(),
	})
	if err != nil {
		logger.Log.Warn("admin menu post failed", zap.Error(err))
	}
}

// MenuActionHandler DMs the admin a follow-up prompt for the chosen action.
func MenuActionHandler(ctx context.Context, gw gateway.Gateway, cb *slack.InteractionCallback, action *slack.BlockAction) {
	var prompt string
	switch action.Value {
	case "broadcast":
		prompt = "Please specify the audience (people or channel ID), the message, and confirm the broadcast."
	case "create_channel":
		prompt = "Please specify the channel name, type (public/private), and confirm the creation."
	case "delete_channel":
		prompt = "Please specify the channel ID to delete and confirm the deletion."
	default:
		return
	}

	dm, err := gw.OpenDM(ctx, cb.User.ID)
	if err != nil {
		return
	}
	if _, err := gw.PostMessage(ctx, dm, gateway.Outbound{Text: prompt}); err != nil {
		logger.Log.Warn("admin prompt failed",
			zap.String("action", action.Value), zap.Error(err))
	}
}

func buildMenuBlocks() []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "Choose an action:", false, false),
			nil, nil,
		),
		slack.NewActionBlock("admin_actions",
			menuButton("admin:broadcast", "Broadcast Message", "broadcast"),
			menuButton("admin:create_channel", "Create Channel", "create_channel"),
			menuButton("admin:delete_channel", "Delete Channel", "delete_channel"),
		),
	}
}

func menuButton(actionID, label, value string) *slack.ButtonBlockElement {
	return slack.NewButtonBlockElement(actionID, value,
		slack.NewTextBlockObject(slack.PlainTextType, label, false, false))
}
