package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"demo/storefront/internal/model"
)

// Publisher announces committed order changes.
type Publisher interface {
	Publish(ctx context.Context, ev model.Event) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Kafka struct {
	w   messageWriter
	log zerolog.Logger
}

func NewKafka(brokers []string, topic string, log zerolog.Logger) *Kafka {
	return newKafka(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}, log)
}

func newKafka(w messageWriter, log zerolog.Logger) *Kafka {
	return &Kafka{w: w, log: log}
}

func (k *Kafka) Publish(ctx context.Context, ev model.Event) error {
	val, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	err = k.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OrderDate),
		Value: val,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "event-type", Value: []byte(ev.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("produce %s: %w", ev.Type, err)
	}
	k.log.Info().Str("type", string(ev.Type)).Str("key", ev.OrderDate).Msg("produced")
	return nil
}

func (k *Kafka) Close() error { return k.w.Close() }

// Nop is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, model.Event) error { return nil }
func (Nop) Close() error                               { return nil }
