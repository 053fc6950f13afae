package bot

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/dylan-dingjan/bebetterbot/config"
	"github.com/dylan-dingjan/bebetterbot/db"
	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/handler/admin"
	"github.com/dylan-dingjan/bebetterbot/handler/idea"
	"github.com/dylan-dingjan/bebetterbot/handler/quote"
	"github.com/dylan-dingjan/bebetterbot/handler/social"
	"github.com/dylan-dingjan/bebetterbot/logger"
	"github.com/dylan-dingjan/bebetterbot/relay"
)

var gw gateway.Gateway

// Start boots the bot: configuration, database, handler registration and the
// HTTP server for Slack deliveries. It blocks until SIGINT/SIGTERM.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		logger.Log.Fatal("error loading config", zap.Error(err))
	}

	db.InitDB(config.Cfg.DBPath)

	admin.RegisterHandlers()
	idea.RegisterHandlers()
	social.RegisterHandlers()
	quote.RegisterHandlers()

	api := slack.New(config.Cfg.Token)
	gw = gateway.NewSlackGateway(api)

	relayer := &relay.Relayer{
		GW:            gw,
		Cases:         db.Store{},
		ReviewChannel: config.Cfg.Channels.SocialReviewChannelID,
	}

	r := mux.NewRouter()
	r.HandleFunc("/slack/events", eventsHandler(relayer)).Methods(http.MethodPost)
	r.HandleFunc("/slack/commands", commandsHandler()).Methods(http.MethodPost)
	r.HandleFunc("/slack/interactions", interactionsHandler()).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              config.Cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	logger.Log.Info("bot is now running, press CTRL-C to exit",
		zap.String("addr", config.Cfg.ListenAddr))

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
