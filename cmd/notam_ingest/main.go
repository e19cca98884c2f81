// notam_ingest subscribes to a NATS subject carrying raw NOTAM texts,
// parses each message and records it: an append to the ClickHouse feed and
// a current state update in PostgreSQL.
//
// Feed messages are either raw NOTAM text or a JSON object with a "text"
// field.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"notam_parser/internal/notam"
	"notam_parser/internal/storage"
)

func main() {
	natsURL := flag.String("nats", envOr("NOTAM_NATS_URL", nats.DefaultURL), "NATS server URL")
	subject := flag.String("subject", envOr("NOTAM_NATS_SUBJECT", "notam.raw"), "NATS subject to subscribe to")
	queue := flag.String("queue", envOr("NOTAM_NATS_QUEUE", "notam-ingest"), "NATS queue group")
	chHost := flag.String("ch-host", envOr("NOTAM_CH_HOST", "localhost"), "ClickHouse host")
	chPort := flag.Int("ch-port", envOrInt("NOTAM_CH_PORT", 9000), "ClickHouse port")
	pgHost := flag.String("pg-host", envOr("NOTAM_PG_HOST", "localhost"), "PostgreSQL host")
	pgPort := flag.Int("pg-port", envOrInt("NOTAM_PG_PORT", 5432), "PostgreSQL port")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*debug {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg := storage.DefaultConfig()
	cfg.ClickHouse.Host = *chHost
	cfg.ClickHouse.Port = *chPort
	cfg.Postgres.Host = *pgHost
	cfg.Postgres.Port = *pgPort

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open databases")
	}
	defer store.Close()

	if err := store.CreateSchemas(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create schemas")
	}

	nc, err := nats.Connect(*natsURL,
		nats.Name("notam-ingest"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		log.Fatal().Err(err).Str("url", *natsURL).Msg("failed to connect to NATS")
	}
	defer nc.Drain()

	sub, err := nc.QueueSubscribe(*subject, *queue, func(m *nats.Msg) {
		handle(ctx, log, store, m.Data)
	})
	if err != nil {
		log.Fatal().Err(err).Str("subject", *subject).Msg("failed to subscribe")
	}
	defer sub.Unsubscribe()

	log.Info().Str("subject", *subject).Str("queue", *queue).Msg("ingesting")
	<-ctx.Done()

	if stats, err := store.CH.GetStats(context.Background()); err == nil {
		log.Info().Uint64("feed_total", stats.Total).Msg("shutting down")
	} else {
		log.Info().Msg("shutting down")
	}
}

func handle(ctx context.Context, log zerolog.Logger, store *storage.Store, payload []byte) {
	text := rawText(payload)
	if strings.TrimSpace(text) == "" {
		return
	}

	msg, err := notam.ParseMessage(text)
	if err != nil {
		log.Warn().Err(err).Msg("parse failed")
		return
	}

	record, err := storage.RecordFrom(msg)
	if err != nil {
		log.Warn().Err(err).Msg("record conversion failed")
		return
	}

	if err := store.Apply(ctx, record); err != nil {
		log.Error().Err(err).Str("notam_id", record.NotamID).Msg("store failed")
		return
	}
	log.Debug().Str("notam_id", record.NotamID).Str("operation", record.Operation).Msg("stored")
}

// rawText unwraps a feed payload: a JSON object with a "text" field, or the
// payload itself as raw NOTAM text.
func rawText(payload []byte) string {
	trimmed := strings.TrimSpace(string(payload))
	if strings.HasPrefix(trimmed, "{") {
		var obj struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil && obj.Text != "" {
			return obj.Text
		}
	}
	return trimmed
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
