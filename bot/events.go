package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/config"
	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/handler"
	"github.com/dylan-dingjan/bebetterbot/logger"
	"github.com/dylan-dingjan/bebetterbot/model"
	"github.com/dylan-dingjan/bebetterbot/relay"
)

// readAndVerify reads the request body and checks the Slack request
// signature against the signing secret. The body is returned for parsing
// and also restored on the request for form-based payloads.
func readAndVerify(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	sv, err := slack.NewSecretsVerifier(r.Header, config.Cfg.SigningSecret)
	if err != nil {
		return nil, err
	}
	if _, err := sv.Write(body); err != nil {
		return nil, err
	}
	if err := sv.Ensure(); err != nil {
		return nil, err
	}
	return body, nil
}

// eventsHandler answers the URL-verification handshake and dispatches event
// callbacks. Each delivery is handled in its own goroutine; failures never
// propagate past the handler boundary.
func eventsHandler(relayer *relay.Relayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readAndVerify(r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
		if err != nil {
			logger.Log.Warn("event parse failed", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch event.Type {
		case slackevents.URLVerification:
			var cr slackevents.ChallengeResponse
			if err := json.Unmarshal(body, &cr); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "text/plain")
			fmt.Fprint(w, cr.Challenge)
			return

		case slackevents.CallbackEvent:
			switch ev := event.InnerEvent.Data.(type) {
			case *slackevents.MessageEvent:
				rev := model.RelayEvent{
					ChannelID: ev.Channel,
					ChannelIM: ev.ChannelType == "im",
					UserID:    ev.User,
					BotID:     ev.BotID,
					Timestamp: ev.TimeStamp,
					ThreadTS:  ev.ThreadTimeStamp,
					Text:      ev.Text,
				}
				go relayer.Relay(context.Background(), rev)

			case *slackevents.TeamJoinEvent:
				go postWelcome(context.Background(), ev.User.ID)
			}
		}

		w.WriteHeader(http.StatusOK)
	}
}

// commandsHandler acknowledges a slash command and processes it in the
// background, matching the platform's ack-then-respond convention.
func commandsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := readAndVerify(r); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			logger.Log.Warn("slash command parse failed", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		go handler.OnSlashCommand(context.Background(), gw, cmd)
		w.WriteHeader(http.StatusOK)
	}
}

// interactionsHandler acknowledges button clicks and form submissions and
// routes them through the action registry.
func interactionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := readAndVerify(r); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var cb slack.InteractionCallback
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &cb); err != nil {
			logger.Log.Warn("interaction parse failed", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if cb.Type == slack.InteractionTypeBlockActions {
			go handler.OnBlockAction(context.Background(), gw, &cb)
		}
		w.WriteHeader(http.StatusOK)
	}
}

var welcomeMessages = []string{
	"Welcome to the team, <@%s>! 💪 We're thrilled to have you here!",
	"<@%s> just joined! 🎉 Let's give them a warm welcome!",
	"Hey <@%s>, welcome aboard! 🚀 You're going to crush it here!",
}

// postWelcome greets a newly joined user in the welcome channel.
func postWelcome(ctx context.Context, userID string) {
	channelID := config.Cfg.Channels.WelcomeChannelID
	if channelID == "" {
		return
	}

	message := fmt.Sprintf(welcomeMessages[rand.Intn(len(welcomeMessages))], userID)
	if _, err := gw.PostMessage(ctx, channelID, gateway.Outbound{Text: message}); err != nil {
		logger.Log.Warn("welcome message failed", zap.Error(err))
	}
}
