package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"demo/storefront/internal/config"
	"demo/storefront/internal/events"
	"demo/storefront/internal/gen"
	"demo/storefront/internal/present"
	"demo/storefront/internal/service"
	"demo/storefront/internal/store"
	"demo/storefront/internal/validate"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	orderDate, err := validate.ParseOrderDate(cfg.OrderDate)
	if err != nil {
		return err
	}
	items := cfg.Items
	if cfg.FakeItems > 0 {
		items = gen.ItemDescriptions(cfg.FakeItems)
	}

	repo, closeDB, err := store.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(); err != nil {
			log.Warn().Err(err).Msg("close db")
		}
	}()

	var pub events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("order events enabled")
		pub = events.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warn().Err(err).Msg("close writer")
		}
	}()

	svc := service.New(repo, present.New(os.Stdout), pub, cfg.OrderTable(), log)
	res, err := svc.Run(ctx, orderDate, items)
	if err != nil {
		return err
	}
	log.Info().Str("op", string(res.Op)).Int64("order_id", res.Order.ID).Int64("rows", res.Rows).Msg("done")
	return nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	var l zerolog.Logger
	if cfg.LogFormat == "json" {
		l = zerolog.New(os.Stderr)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	return l.Level(lvl).With().Timestamp().Logger()
}
