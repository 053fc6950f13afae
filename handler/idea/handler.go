package idea

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/config"
	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/logger"
)

// StartIdeaCommandHandler DMs the requester the idea intake form.
func StartIdeaCommandHandler(ctx context.Context, gw gateway.Gateway, cmd slack.SlashCommand) {
	dm, err := gw.OpenDM(ctx, cmd.UserID)
	if err != nil {
		return
	}

	_, err = gw.PostMessage(ctx, dm, gateway.Outbound{
		Text:   "Let's gather some details about your idea! 💡 Please provide the following information:",
		Blocks: buildIdeaFormBlocks(),
	})
	if err != nil {
		logger.Log.Warn("idea form post failed", zap.Error(err))
	}
}

// SubmitIdeaHandler posts the submitted idea to the idea channel and
// confirms to the requester. Ideas do not mint case IDs.
func SubmitIdeaHandler(ctx context.Context, gw gateway.Gateway, cb *slack.InteractionCallback, action *slack.BlockAction) {
	description := formValue(cb, "idea_description", "description_input")
	audience := formValue(cb, "idea_audience", "audience_input")

	if strings.TrimSpace(description) == "" || strings.TrimSpace(audience) == "" {
		_ = gw.PostEphemeral(ctx, cb.Channel.ID, cb.User.ID, gateway.Outbound{
			Text: "⚠️ Please fill in both fields before submitting.",
		})
		return
	}

	message := fmt.Sprintf("New Idea from <@%s>:\n*Description:* %s\n*Audience:* %s",
		cb.User.ID, description, audience)

	if _, err := gw.PostMessage(ctx, config.Cfg.Channels.IdeaChannelID, gateway.Outbound{Text: message}); err != nil {
		logger.Log.Warn("idea post failed", zap.Error(err))
		return
	}

	dm, err := gw.OpenDM(ctx, cb.User.ID)
	if err != nil {
		return
	}
	if _, err := gw.PostMessage(ctx, dm, gateway.Outbound{
		Text: "✅ Your idea has been submitted successfully!",
	}); err != nil {
		logger.Log.Warn("idea confirmation failed", zap.Error(err))
	}
}

func buildIdeaFormBlocks() []slack.Block {
	descInput := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "Enter a short description", false, false),
		"description_input")
	audienceInput := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "Describe the audience", false, false),
		"audience_input")

	return []slack.Block{
		slack.NewInputBlock("idea_description",
			slack.NewTextBlockObject(slack.PlainTextType, "What's your idea about?", false, false),
			nil, descInput),
		slack.NewInputBlock("idea_audience",
			slack.NewTextBlockObject(slack.PlainTextType, "Who will benefit from this idea?", false, false),
			nil, audienceInput),
		slack.NewActionBlock("idea_submit",
			slack.NewButtonBlockElement("submit_idea", "submit_idea",
				slack.NewTextBlockObject(slack.PlainTextType, "Submit Idea", false, false)).
				WithStyle(slack.StylePrimary),
		),
	}
}

// formValue reads a typed input value out of the interaction state.
func formValue(cb *slack.InteractionCallback, blockID, actionID string) string {
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
