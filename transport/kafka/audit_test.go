package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cleanrate/config"
	kafkaMocks "cleanrate/infras/kafka/mocks"
	otelMocks "cleanrate/infras/otel/mocks"
	historyMocks "cleanrate/internal/domains/history/mocks"
	"cleanrate/internal/domains/history/model/dto"
	"cleanrate/transport/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConsumer(t *testing.T) (*kafka.AuditConsumer, *kafkaMocks.MockClient, *historyMocks.MockHistoryService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	history := historyMocks.NewMockHistoryService(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "cleanrate-auditworker"
	cfg.Kafka.Topic.History = "cleanrate.history"

	return kafka.NewAuditConsumer(client, history, cfg, otelMocks.NewOtel()), client, history
}

func TestAuditConsumer_Handle(t *testing.T) {
	consumer, _, history := newConsumer(t)

	raw, err := json.Marshal(dto.Entry{ID: "entry-1", Action: "ADD_RATING", TableName: "ratings"})
	require.NoError(t, err)

	history.EXPECT().Store(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e dto.Entry) error {
		assert.Equal(t, "entry-1", e.ID)
		assert.Equal(t, "ADD_RATING", e.Action)

		return nil
	})

	assert.NoError(t, consumer.Handle(context.Background(), kafkaGo.Message{Value: raw}))
}

func TestAuditConsumer_Handle_Malformed(t *testing.T) {
	consumer, _, _ := newConsumer(t)

	assert.NoError(t, consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte("{")}))
}

func TestAuditConsumer_Handle_StoreError(t *testing.T) {
	consumer, _, history := newConsumer(t)

	raw, err := json.Marshal(dto.Entry{ID: "entry-1", Action: "LOGIN"})
	require.NoError(t, err)

	history.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	assert.Error(t, consumer.Handle(context.Background(), kafkaGo.Message{Value: raw}))
}

func TestAuditConsumer_Run(t *testing.T) {
	consumer, client, _ := newConsumer(t)

	client.EXPECT().Consume(gomock.Any(), "cleanrate-auditworker", "cleanrate.history", gomock.Any()).Return(nil)
	assert.NoError(t, consumer.Run(context.Background()))

	client.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("no brokers"))
	assert.Error(t, consumer.Run(context.Background()))
}
