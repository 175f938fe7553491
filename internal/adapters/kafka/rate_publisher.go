// Package kafka publishes exchange rate events to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/core/ports/events"
	"github.com/SscSPs/erp_backend/internal/utils"
	"github.com/segmentio/kafka-go"
)

const writeTimeout = 5 * time.Second

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RatePublisher writes RateUpdated events keyed by currency pair.
type RatePublisher struct {
	writer messageWriter
	topic  string
}

// NewRatePublisher creates a publisher for topic on brokers.
// With no brokers the returned publisher only logs events.
func NewRatePublisher(brokers []string, topic string, logger *slog.Logger) events.RateEventPublisher {
	if len(brokers) == 0 {
		logger.Warn("No Kafka brokers configured, rate events will only be logged")
		return NewLogPublisher(logger)
	}
	return &RatePublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		topic: topic,
	}
}

// rateUpdatedPayload is the message body; rates carry exactly domain.RateScale fractional digits.
type rateUpdatedPayload struct {
	ExchangeRateID   string    `json:"exchangeRateID"`
	FromCurrencyCode string    `json:"fromCurrencyCode"`
	ToCurrencyCode   string    `json:"toCurrencyCode"`
	PreviousRate     string    `json:"previousRate"`
	Rate             string    `json:"rate"`
	UpdatedBy        string    `json:"updatedBy"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toRateUpdatedPayload(event domain.ExchangeRateUpdatedEvent) rateUpdatedPayload {
	return rateUpdatedPayload{
		ExchangeRateID:   event.ExchangeRateID,
		FromCurrencyCode: event.FromCurrencyCode,
		ToCurrencyCode:   event.ToCurrencyCode,
		PreviousRate:     utils.FormatRate(event.PreviousRate),
		Rate:             utils.FormatRate(event.Rate),
		UpdatedBy:        event.UpdatedBy,
		UpdatedAt:        event.UpdatedAt,
	}
}

// rateUpdatedMessage builds the Kafka message for event.
// Same-pair events share a key so they stay ordered within a partition.
func rateUpdatedMessage(event domain.ExchangeRateUpdatedEvent) (kafka.Message, error) {
	value, err := json.Marshal(toRateUpdatedPayload(event))
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode rate event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.FromCurrencyCode + ":" + event.ToCurrencyCode),
		Value: value,
		Time:  event.UpdatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("currency.rate.updated")},
		},
	}, nil
}

// PublishRateUpdated writes one event, bounded by a short timeout.
func (p *RatePublisher) PublishRateUpdated(ctx context.Context, event domain.ExchangeRateUpdatedEvent) error {
	msg, err := rateUpdatedMessage(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write rate event to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *RatePublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher records events in the log instead of a broker.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishRateUpdated(_ context.Context, event domain.ExchangeRateUpdatedEvent) error {
	p.logger.Info("Exchange rate updated event",
		slog.String("exchange_rate_id", event.ExchangeRateID),
		slog.String("from", event.FromCurrencyCode),
		slog.String("to", event.ToCurrencyCode),
		slog.String("previous_rate", utils.FormatRate(event.PreviousRate)),
		slog.String("rate", utils.FormatRate(event.Rate)),
		slog.String("updated_by", event.UpdatedBy))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
