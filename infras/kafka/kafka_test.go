package kafka_test

import (
	"context"
	"testing"

	"cleanrate/config"
	"cleanrate/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	Action string `json:"action"`
	UserID string `json:"user_id"`
}

func TestToKafkaMessageAndDecode(t *testing.T) {
	msg := kafka.Message{Key: "user-1", Value: event{Action: "ADD_RATING", UserID: "user-1"}}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("user-1"), raw.Key)
	assert.JSONEq(t, `{"action":"ADD_RATING","user_id":"user-1"}`, string(raw.Value))

	decoded, err := kafka.Decode[event](raw)
	require.NoError(t, err)
	assert.Equal(t, event{Action: "ADD_RATING", UserID: "user-1"}, decoded)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := kafka.Decode[event](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestNoBrokers(t *testing.T) {
	client := kafka.New(&config.Config{})

	err := client.SendMessages(context.Background(), "history", kafka.Message{Key: "k", Value: "v"})
	assert.ErrorIs(t, err, kafka.ErrNoBrokers)

	err = client.Consume(context.Background(), "", "history", func(context.Context, kafkaGo.Message) error { return nil })
	assert.ErrorIs(t, err, kafka.ErrNoBrokers)

	assert.NoError(t, client.Close())
}
