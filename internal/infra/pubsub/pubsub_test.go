package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zenvira/config"
	"zenvira/internal/domain/constants"
	"zenvira/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.Event {
	return &service.Event{
		Type:        constants.EventOrderPlaced,
		RequestID:   "req-42",
		AggregateID: "order-1",
		OccurredAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Payload:     map[string]any{"total": 15.01},
	}
}

func TestPushMessage_RoundTrip(t *testing.T) {
	msg, err := NewPushMessage(sampleEvent(), "msg-1", localSubscription)
	require.NoError(t, err)
	assert.Equal(t, constants.EventOrderPlaced, msg.Message.Attributes["event_type"])
	assert.Equal(t, "req-42", msg.Message.Attributes["request_id"])

	event, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, constants.EventOrderPlaced, event.Type)
	assert.Equal(t, "order-1", event.AggregateID)
	assert.InDelta(t, 15.01, event.Payload["total"], 0.0001)
}

func TestPushMessage_DecodeRejectsGarbage(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%not-base64"
	_, err := msg.DecodeEvent()
	assert.Error(t, err)

	msg.Message.Data = "e30=" // {}
	_, err = msg.DecodeEvent()
	assert.Error(t, err)
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	require.NoError(t, publisher.Close())

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, localSubscription, received.Subscription)

	event, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "order-1", event.AggregateID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewLocalHTTPPublisher(srv.URL, discardLogger()).Publish(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

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

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, discardLogger())

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "order-1", string(msg.Key))

	var event service.Event
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, constants.EventOrderPlaced, event.Type)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "req-42", headers["request_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	publisher := newKafkaPublisher(&fakeWriter{err: errors.New("broker down")}, discardLogger())

	err := publisher.Publish(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	publisher, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(ctx, sampleEvent()))

	publisher, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	publisher, err = newPublisher(ctx, &config.PubSubConfig{
		Provider: constants.PubSubProviderKafka,
		Kafka:    config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "zenvira-events"},
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &kafkaPublisher{}, publisher)
	require.NoError(t, publisher.Close())
}

func TestNewPublisher_InvalidConfig(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	cases := []*config.PubSubConfig{
		{Provider: constants.PubSubProviderLocal},
		{Provider: constants.PubSubProviderGoogle, TopicID: "events"},
		{Provider: constants.PubSubProviderGoogle, ProjectID: "zenvira"},
		{Provider: constants.PubSubProviderKafka, Kafka: config.KafkaConfig{Topic: "events"}},
		{Provider: constants.PubSubProviderKafka, Kafka: config.KafkaConfig{Brokers: []string{"localhost:9092"}}},
		{Provider: "rabbitmq"},
	}
	for _, cfg := range cases {
		_, err := newPublisher(ctx, cfg, logger)
		assert.Error(t, err, "provider %q", cfg.Provider)
	}
}
