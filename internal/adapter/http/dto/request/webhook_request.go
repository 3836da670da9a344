package request

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

var ErrMalformedWebhook = errors.New("malformed webhook payload")

// WebhookPayload is the inner provider notification body.
type WebhookPayload struct {
	MerchantOrderID string `json:"merchantOrderId"`
	State           string `json:"state"`
	TransactionID   string `json:"transactionId"`
	OrderID         string `json:"orderId"`
}

// PhonePeWebhookRequest is the provider's server-to-server envelope. The
// payload arrives either as an inline JSON object or as a base64-encoded
// JSON string, depending on the provider's delivery mode.
type PhonePeWebhookRequest struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// DecodePayload unwraps the payload, transparently handling the base64
// string form.
func (r PhonePeWebhookRequest) DecodePayload() (WebhookPayload, error) {
	raw := bytesTrimSpace(r.Payload)
	if len(raw) == 0 {
		return WebhookPayload{}, ErrMalformedWebhook
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return WebhookPayload{}, ErrMalformedWebhook
		}
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return WebhookPayload{}, ErrMalformedWebhook
		}
		raw = decoded
	}

	var payload WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return WebhookPayload{}, ErrMalformedWebhook
	}
	return payload, nil
}

// ResolveTransactionID picks the provider reference to persist on the order.
func (p WebhookPayload) ResolveTransactionID() string {
	if v := strings.TrimSpace(p.TransactionID); v != "" {
		return v
	}
	return strings.TrimSpace(p.OrderID)
}

func bytesTrimSpace(b []byte) []byte {
	return []byte(strings.TrimSpace(string(b)))
}
