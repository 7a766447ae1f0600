package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zenvira/config"
	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/constants"
	"zenvira/internal/domain/service"
	"zenvira/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, provider, env string) (*PushHandler, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewJSONHandler(&logs, nil)),
	}), &logs
}

func push(t *testing.T, h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	rec := httptest.NewRecorder()
	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))

	return rec
}

func encode(t *testing.T, event *service.Event) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "msg-1", "projects/zenvira/subscriptions/notifier")
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func TestHandlePush_DispatchesNotification(t *testing.T) {
	h, logs := newTestHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	rec := push(t, h, encode(t, &service.Event{
		Type:        constants.EventOrderPlaced,
		RequestID:   "req-42",
		AggregateID: "3f1c2a9b-0000-4000-8000-000000000000",
		OccurredAt:  time.Now(),
		Payload:     map[string]any{"email": "ada@zenvira.test", "total": "14.75", "itemCount": 2},
	}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "Notification dispatched")
	assert.Contains(t, logs.String(), `"request_id":"req-42"`)
	assert.Contains(t, logs.String(), "ada@zenvira.test")
	assert.Contains(t, logs.String(), "3F1C2A9B")
}

func TestHandlePush_UnknownEventIsAcknowledged(t *testing.T) {
	h, logs := newTestHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	rec := push(t, h, encode(t, &service.Event{Type: "medicine.indexed", AggregateID: "m-1"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logs.String(), "Notification dispatched")
}

func TestHandlePush_MalformedMessage(t *testing.T) {
	h, _ := newTestHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	rec := push(t, h, `{"message":{"data":"not base64!"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = push(t, h, `{"message":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_GoogleRequiresToken(t *testing.T) {
	h, _ := newTestHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
	require.True(t, h.verifyPushAuth)

	rec := push(t, h, encode(t, &service.Event{Type: constants.EventUserRegistered}), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = push(t, h, encode(t, &service.Event{Type: constants.EventUserRegistered}), http.Header{
		echo.HeaderAuthorization: []string{"Basic abc"},
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h, _ = newTestHandler(t, constants.PubSubProviderGoogle, constants.EnvDevelop)
	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newTestHandler(t, "", constants.EnvDevelop)
	ctx := deliverycontext.WithRequestID(t.Context(), "from-header")

	msg := &pubsub.PushMessage{}
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", h.extractRequestID(ctx, msg, &service.Event{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, msg, &service.Event{RequestID: "from-event"}))
	assert.Equal(t, "from-header", h.extractRequestID(ctx, msg, &service.Event{}))
	assert.Len(t, h.extractRequestID(t.Context(), msg, &service.Event{}), 36)
}

func TestRenderNotification(t *testing.T) {
	tests := []struct {
		name      string
		event     *service.Event
		recipient string
		title     string
		body      string
	}{
		{
			name:      "welcome",
			event:     &service.Event{Type: constants.EventUserRegistered, Payload: map[string]any{"email": "ada@zenvira.test", "name": "Ada"}},
			recipient: "ada@zenvira.test",
			title:     "Welcome to Zenvira",
			body:      "Hi Ada, your account is ready.",
		},
		{
			name: "status change",
			event: &service.Event{
				Type:        constants.EventOrderStatusChanged,
				AggregateID: "abcdef12-3456",
				Payload:     map[string]any{"userId": "u-1", "from": "pending", "to": "shipped"},
			},
			recipient: "u-1",
			title:     "Order update",
			body:      "Your order ABCDEF12 is now shipped.",
		},
		{
			name: "application rejected",
			event: &service.Event{
				Type:    constants.EventSellerApplicationReviewed,
				Payload: map[string]any{"userId": "u-2", "storeName": "Corner Pharmacy", "status": "rejected"},
			},
			recipient: "u-2",
			title:     "Seller application rejected",
			body:      "Your application for Corner Pharmacy was rejected.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notification, ok := RenderNotification(tt.event)
			require.True(t, ok)
			assert.Equal(t, tt.recipient, notification.Recipient)
			assert.Equal(t, tt.title, notification.Title)
			assert.Equal(t, tt.body, notification.Body)
		})
	}

	_, ok := RenderNotification(&service.Event{Type: "unknown"})
	assert.False(t, ok)
}
