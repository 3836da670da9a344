package request

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
)

func TestPhonePeWebhookRequest_DecodePayload(t *testing.T) {
	t.Run("inline object", func(t *testing.T) {
		r := PhonePeWebhookRequest{
			Event:   "checkout.order.completed",
			Payload: json.RawMessage(`{"merchantOrderId":"ORD-1","state":"COMPLETED","transactionId":"TXN-9"}`),
		}
		p, err := r.DecodePayload()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.MerchantOrderID != "ORD-1" || p.State != "COMPLETED" || p.TransactionID != "TXN-9" {
			t.Fatalf("unexpected payload: %+v", p)
		}
	})

	t.Run("base64 wrapped", func(t *testing.T) {
		inner := base64.StdEncoding.EncodeToString([]byte(`{"merchantOrderId":"ORD-2","state":"FAILED"}`))
		r := PhonePeWebhookRequest{Payload: json.RawMessage(`"` + inner + `"`)}
		p, err := r.DecodePayload()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.MerchantOrderID != "ORD-2" || p.State != "FAILED" {
			t.Fatalf("unexpected payload: %+v", p)
		}
	})

	t.Run("malformed variants", func(t *testing.T) {
		for _, payload := range []string{"", `"not-base64!!"`, `"aGVsbG8="`, `123`} {
			r := PhonePeWebhookRequest{Payload: json.RawMessage(payload)}
			if _, err := r.DecodePayload(); !errors.Is(err, ErrMalformedWebhook) {
				t.Fatalf("payload %q: expected ErrMalformedWebhook, got %v", payload, err)
			}
		}
	})
}

func TestWebhookPayload_ResolveTransactionID(t *testing.T) {
	p := WebhookPayload{TransactionID: "TXN-1", OrderID: "OMO-1"}
	if got := p.ResolveTransactionID(); got != "TXN-1" {
		t.Fatalf("expected TXN-1, got %s", got)
	}
	p = WebhookPayload{OrderID: "OMO-1"}
	if got := p.ResolveTransactionID(); got != "OMO-1" {
		t.Fatalf("expected OMO-1, got %s", got)
	}
}
