// Package notify delivers customer-facing messages through the mail
// gateway service. It translates between the gateway's API models and
// the notification port, so a gateway change never leaks into the
// application layer.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/plateworks/caterops/internal/adapters/clients"
	"github.com/plateworks/caterops/internal/platform/logging"
	"github.com/plateworks/caterops/internal/ports"
)

// messagesPath is the gateway endpoint for outbound messages.
const messagesPath = "/v1/messages"

// GatewayConfig contains configuration for the mail gateway adapter.
type GatewayConfig struct {
	// Client is the HTTP client to use for requests. The client's
	// BaseURL should be set to the mail gateway endpoint.
	Client *clients.Client

	// Sender is the from-address stamped on every message.
	Sender string

	// SenderName is the display name for the from-address.
	SenderName string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// Gateway implements ports.Notifier against the mail gateway API.
type Gateway struct {
	client     *clients.Client
	sender     string
	senderName string
	logger     *slog.Logger
}

var _ ports.Notifier = (*Gateway)(nil)

// NewGateway creates a mail gateway adapter.
// Panics if the client is nil, as this is a programming error.
func NewGateway(cfg GatewayConfig) *Gateway {
	if cfg.Client == nil {
		panic("notify.NewGateway: client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Gateway{
		client:     cfg.Client,
		sender:     cfg.Sender,
		senderName: cfg.SenderName,
		logger:     logger.With(slog.String("component", "notify.Gateway")),
	}
}

// outboundMessage is the gateway's wire format for a message.
type outboundMessage struct {
	From     string `json:"from"`
	FromName string `json:"from_name,omitempty"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// acceptedResponse is the gateway's acknowledgment payload.
type acceptedResponse struct {
	MessageID string `json:"message_id"`
}

// Send submits the message to the gateway. The gateway queues delivery,
// so a 202 only guarantees acceptance, not receipt.
func (g *Gateway) Send(ctx context.Context, msg ports.Message) error {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = g.logger
	}

	payload, err := json.Marshal(outboundMessage{
		From:     g.sender,
		FromName: g.senderName,
		To:       msg.To,
		Subject:  msg.Subject,
		Body:     msg.Body,
	})
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	resp, err := g.client.Post(ctx, messagesPath, bytes.NewReader(payload))
	if mapped := MapGatewayError(resp, err, msg.To); mapped != nil {
		return mapped
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.DebugContext(ctx, "failed to close response body", slog.Any("error", closeErr))
		}
	}()

	var accepted acceptedResponse
	if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil && resp.StatusCode != http.StatusNoContent {
		logger.DebugContext(ctx, "gateway response had no message id", slog.Any("error", err))
	}

	logger.Log(ctx, logging.LevelTrace, "message accepted by gateway",
		slog.String("message_id", accepted.MessageID),
	)

	return nil
}
