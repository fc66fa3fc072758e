// Package mailer delivers outgoing mail. Messages are published to a Kafka
// topic and an external relay performs the actual SMTP delivery.
package mailer

//go:generate mockgen -source=mailer.go -destination=mock_mailer.go -package=mailer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/yamdb/internal/logger"
)

// Message is the payload written to the mail topic.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaMailer publishes messages keyed by recipient.
type KafkaMailer struct {
	writer KafkaWriter
	from   string
}

// NewKafkaMailer creates a mailer writing through w. from fills Message.From when empty.
func NewKafkaMailer(w KafkaWriter, from string) *KafkaMailer {
	return &KafkaMailer{writer: w, from: from}
}

// Send publishes msg to the mail topic.
func (m *KafkaMailer) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = m.from
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail: %w", err)
	}

	err = m.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.To),
		Value: data,
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to publish mail", "to", msg.To, "error", err)
		return fmt.Errorf("publish mail: %w", err)
	}

	logger.FromContext(ctx).Infow("mail published", "to", msg.To, "subject", msg.Subject)
	return nil
}

// Close closes the underlying writer.
func (m *KafkaMailer) Close() error {
	return m.writer.Close()
}

// LogMailer only logs messages. Used when no broker is configured.
type LogMailer struct{}

// Send logs msg and never fails.
func (LogMailer) Send(ctx context.Context, msg Message) error {
	logger.FromContext(ctx).Infow("mail",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

// Close is a no-op.
func (LogMailer) Close() error { return nil }
