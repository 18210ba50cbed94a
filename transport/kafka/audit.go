package kafka

import (
	"context"
	"fmt"

	"cleanrate/config"
	"cleanrate/infras/kafka"
	"cleanrate/infras/otel"
	"cleanrate/internal/domains/history/model/dto"
	historyService "cleanrate/internal/domains/history/service"
	"cleanrate/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// AuditConsumer drains the history topic into the history table.
type AuditConsumer struct {
	client  kafka.Client
	history historyService.History
	cfg     *config.Config
	otel    otel.Otel
}

func NewAuditConsumer(client kafka.Client, history historyService.History, cfg *config.Config, otel otel.Otel) *AuditConsumer {
	return &AuditConsumer{
		client:  client,
		history: history,
		cfg:     cfg,
		otel:    otel,
	}
}

// Run blocks until ctx is cancelled.
func (c *AuditConsumer) Run(ctx context.Context) error {
	topic := c.cfg.Kafka.Topic.History

	log.Info().Str("topic", topic).Str("group", c.cfg.Kafka.ConsumerGroup).Msg("Starting audit consumer.")

	if err := c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, topic, c.Handle); err != nil {
		return fmt.Errorf("failed to consume %s: %w", topic, err)
	}

	return nil
}

// Handle stores one published entry. Undecodable payloads are dropped so they do not block the partition.
func (c *AuditConsumer) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".AuditConsumer.Handle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entry, err := kafka.Decode[dto.Entry](message)
	if err != nil {
		log.Error().Err(err).Int64("offset", message.Offset).Msg("dropping malformed history message")

		return nil
	}

	scope.SetAttribute("history.action", entry.Action)

	if err = c.history.Store(ctx, entry); err != nil {
		return fmt.Errorf("failed to store history entry %s: %w", entry.ID, err)
	}

	return nil
}
