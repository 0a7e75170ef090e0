package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	coreconfig "crushbot/core/config"
	"crushbot/core/logger"
)

// Route declares a single bot handler bound to an endpoint. Endpoint values
// are passed directly to tele.Bot.Handle.
type Route struct {
	Name     string
	Endpoint any
	Handler  tele.HandlerFunc
}

// NewBot constructs a telebot instance from configuration.
func NewBot(cfg *coreconfig.Config) (*tele.Bot, error) {
	start := time.Now()
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: BuildPoller(cfg),
		Client: BuildHTTPClient(),
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: bot initialization failed: %w", err)
	}

	logger.Component("tg").Info("bot built",
		slog.String("event", "mode"),
		slog.String("mode", cfg.Telegram.RunMode),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return bot, nil
}

// Run registers routes and runs the bot until the provided context is done.
// Each route is wrapped with recover, logging, and summary middleware.
func Run(ctx context.Context, bot *tele.Bot, routes []Route) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for _, route := range routes {
		if route.Endpoint == nil || route.Handler == nil {
			continue
		}
		h := route.Handler
		h = WithSummary(route.Name, h)
		h = LoggerMiddleware(h)
		h = RecoverMiddleware(h)
		bot.Handle(route.Endpoint, h)
	}
	logger.Component("tg.wire").Info("tg.wire",
		slog.String("event", "complete"),
		slog.Int("routes", len(routes)),
	)

	runDone := make(chan struct{})
	go func() {
		bot.Start()
		close(runDone)
	}()

	select {
	case <-ctx.Done():
		bot.Stop()
		<-runDone
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return ctx.Err()
	case <-runDone:
		return nil
	}
}
