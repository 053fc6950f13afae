package handler

import (
	"context"
	"strings"

	"github.com/slack-go/slack"

	"github.com/dylan-dingjan/bebetterbot/gateway"
)

// CommandFunc handles a slash command.
type CommandFunc func(ctx context.Context, gw gateway.Gateway, cmd slack.SlashCommand)

// ActionFunc handles a single block action from an interaction payload.
type ActionFunc func(ctx context.Context, gw gateway.Gateway, cb *slack.InteractionCallback, action *slack.BlockAction)

var (
	commandHandlers = make(map[string]CommandFunc)
	actionHandlers  = make(map[string]ActionFunc)
)

// AddCommandHandler registers a handler for a slash command (including the
// leading slash).
func AddCommandHandler(name string, handler CommandFunc) {
	commandHandlers[name] = handler
}

// AddActionHandler registers a handler for a block action. Action IDs may
// carry arguments after a colon; registration is by the part before the
// first colon.
func AddActionHandler(actionID string, handler ActionFunc) {
	actionHandlers[actionID] = handler
}

// OnSlashCommand routes a slash command to its registered handler.
func OnSlashCommand(ctx context.Context, gw gateway.Gateway, cmd slack.SlashCommand) {
	if handler, ok := commandHandlers[cmd.Command]; ok {
		handler(ctx, gw, cmd)
	}
}

// OnBlockAction routes every action in an interaction payload to its
// registered handler.
func OnBlockAction(ctx context.Context, gw gateway.Gateway, cb *slack.InteractionCallback) {
	for _, action := range cb.ActionCallback.BlockActions {
		parts := strings.SplitN(action.ActionID, ":", 2)
		handlerKey := parts[0]

		if handler, ok := actionHandlers[handlerKey]; ok {
			handler(ctx, gw, cb, action)
		}
	}
}
