package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/plateworks/caterops/internal/adapters/clients"
	"github.com/plateworks/caterops/internal/domain"
)

// gatewayError is the mail gateway's error payload.
type gatewayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// parseGatewayError attempts to parse an error response body.
// Returns nil if the body is empty or cannot be parsed.
func parseGatewayError(body io.Reader) *gatewayError {
	if body == nil {
		return nil
	}

	var gwErr gatewayError
	if err := json.NewDecoder(body).Decode(&gwErr); err != nil {
		return nil
	}

	if gwErr.Code == "" && gwErr.Message == "" {
		return nil
	}

	return &gwErr
}

// MapGatewayError maps a gateway response or transport failure to a
// domain error. A nil return means the request was accepted.
//
// The caller decides severity: the quote service reports these as soft
// warnings, never as operation failures.
func MapGatewayError(resp *http.Response, clientErr error, recipient string) error {
	if clientErr != nil {
		switch {
		case errors.Is(clientErr, clients.ErrCircuitOpen):
			return domain.NewUnavailableError("mail-gateway", "circuit breaker open")
		case errors.Is(clientErr, clients.ErrMaxRetriesExceeded):
			return domain.NewNotificationError(recipient, "gateway unreachable after retries")
		default:
			return domain.NewNotificationError(recipient, clientErr.Error())
		}
	}

	if resp == nil {
		return domain.NewUnavailableError("mail-gateway", "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	defer func() { _ = resp.Body.Close() }()

	reason := fmt.Sprintf("gateway returned %d", resp.StatusCode)
	if gwErr := parseGatewayError(resp.Body); gwErr != nil && gwErr.Message != "" {
		reason = gwErr.Message
	}

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return domain.NewValidationError("message", reason)
	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.NewUnavailableError("mail-gateway", reason)
	default:
		return domain.NewNotificationError(recipient, reason)
	}
}
