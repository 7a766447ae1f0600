package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"zenvira/config"
	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/constants"
	"zenvira/internal/domain/service"
	"zenvira/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Notification is the customer message rendered for an event.
type Notification struct {
	Recipient string
	Title     string
	Body      string
}

// PushHandler turns pushed domain events into customer notifications.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push subscriptions carry a signed token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming push messages.
// Malformed messages are acknowledged so the subscription does not redeliver them forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	ctx, reqLogger := deliverycontext.WithRequest(ctx, requestID, h.logger)

	notification, ok := RenderNotification(event)
	if !ok {
		reqLogger.Info("[Worker] Event has no customer notification",
			slog.String("event_type", event.Type),
			slog.String("aggregate_id", event.AggregateID),
		)

		return c.NoContent(http.StatusOK)
	}

	h.deliver(ctx, event, notification)

	return c.NoContent(http.StatusOK)
}

// deliver hands the notification to the mail transport; here it is logged.
func (h *PushHandler) deliver(ctx context.Context, event *service.Event, notification *Notification) {
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Notification dispatched",
		slog.String("event_type", event.Type),
		slog.String("aggregate_id", event.AggregateID),
		slog.String("recipient", notification.Recipient),
		slog.String("title", notification.Title),
		slog.String("body", notification.Body),
	)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.Event) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// RenderNotification builds the customer message for an event. The second return value
// is false for events that do not notify anyone.
func RenderNotification(event *service.Event) (*Notification, bool) {
	payload := func(key string) string {
		if v, ok := event.Payload[key]; ok && v != nil {
			return fmt.Sprint(v)
		}

		return ""
	}

	switch event.Type {
	case constants.EventUserRegistered:
		return &Notification{
			Recipient: payload("email"),
			Title:     "Welcome to Zenvira",
			Body:      fmt.Sprintf("Hi %s, your account is ready.", payload("name")),
		}, true

	case constants.EventOrderPlaced:
		return &Notification{
			Recipient: payload("email"),
			Title:     "Order received",
			Body: fmt.Sprintf("Your order %s with %s item(s) totalling %s has been placed and will be paid on delivery.",
				shortID(event.AggregateID), payload("itemCount"), payload("total")),
		}, true

	case constants.EventOrderStatusChanged:
		return &Notification{
			Recipient: payload("userId"),
			Title:     "Order update",
			Body:      fmt.Sprintf("Your order %s is now %s.", shortID(event.AggregateID), payload("to")),
		}, true

	case constants.EventSellerApplicationReviewed:
		return &Notification{
			Recipient: payload("userId"),
			Title:     "Seller application " + payload("status"),
			Body:      fmt.Sprintf("Your application for %s was %s.", payload("storeName"), payload("status")),
		}, true

	default:
		return nil, false
	}
}

// shortID is the customer-facing order reference.
func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}

	return strings.ToUpper(id)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
