package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nexusshop/storefront/internal/config"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisherKeysBySession(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, logger: zap.NewNop()}

	event := New(TypeOrderPlaced, "sess-1", map[string]interface{}{"order_id": "NX12345678"})
	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "sess-1", string(msg.Key))
	assert.Equal(t, TypeOrderPlaced, string(msg.Headers[0].Value))

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "NX12345678", decoded.Data["order_id"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisherWrapsErrors(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}, logger: zap.NewNop()}

	err := p.Publish(context.Background(), New(TypeCartCleared, "s", nil))
	assert.ErrorContains(t, err, "broker down")
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	require.NoError(t, p.Publish(context.Background(), New(TypeUserSignedIn, "s", nil)))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, TypeUserSignedIn, logs.All()[0].ContextMap()["type"])
}

func TestNewPublisherSelectsBackend(t *testing.T) {
	assert.IsType(t, &LogPublisher{}, NewPublisher(config.KafkaConfig{}, zap.NewNop()))

	kp := NewPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "t"}, zap.NewNop())
	assert.IsType(t, &KafkaPublisher{}, kp)
	require.NoError(t, kp.Close())
}
