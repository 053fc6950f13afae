package quote

import (
	"context"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/config"
	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/handler"
	"github.com/dylan-dingjan/bebetterbot/logger"
	"github.com/dylan-dingjan/bebetterbot/utils"
)

// RegisterHandlers registers all handlers for the quote package.
func RegisterHandlers() {
	handler.AddCommandHandler("/motivate", MotivateCommandHandler)
}

// MotivateCommandHandler posts a motivational quote to the quote channel.
// The fetch falls back to a fixed line, so this always posts something.
func MotivateCommandHandler(ctx context.Context, gw gateway.Gateway, cmd slack.SlashCommand) {
	text := utils.FetchQuote(ctx, config.Cfg.Quotes.APIURL)

	if _, err := gw.PostMessage(ctx, config.Cfg.Channels.QuoteChannelID, gateway.Outbound{Text: text}); err != nil {
		logger.Log.Warn("quote post failed", zap.Error(err))
	}
}
