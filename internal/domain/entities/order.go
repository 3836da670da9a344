package entities

import (
	"errors"
	"fmt"
	"time"
)

// OrderStatus is the fulfillment state of an order.
//
// Orders only move forward:
//
//	pending_payment -> new -> in-process -> in-transit -> completed
//
// The pending_payment -> new hop happens exclusively through the payment
// reconciliation path (MarkPaid); admin updates cover the rest. Both store
// backends reject transitions that are not in the allowed table, so callers
// cannot rewind an order by writing a stale status.

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusNew            OrderStatus = "new"
	OrderStatusInProcess      OrderStatus = "in-process"
	OrderStatusInTransit      OrderStatus = "in-transit"
	OrderStatusCompleted      OrderStatus = "completed"
)

// PaymentStatus is the payment outcome for an order. "paid" is terminal:
// re-applying it must be a no-op for side effects.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

var ErrInvalidStatusTransition = errors.New("invalid order status transition")

var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment: {OrderStatusNew},
	OrderStatusNew:            {OrderStatusInProcess},
	OrderStatusInProcess:      {OrderStatusInTransit},
	OrderStatusInTransit:      {OrderStatusCompleted},
	OrderStatusCompleted:      {},
}

// ValidOrderStatus reports whether s is one of the closed set of statuses.
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to the next.
// A transition to the current status is allowed (idempotent write).
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem is a line captured at validation time. Price and Name come from
// the catalog, never from the client, and are immutable once the order is
// persisted: later catalog changes do not alter a placed order.

type OrderItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// Order is the persisted order row.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ID is time-derived ("ORD-<millis>") and globally unique by construction.
// TransactionID stays empty until the payment provider confirms an outcome.

type Order struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Zip           string        `json:"zip"`
	Items         []OrderItem   `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// NewOrderID derives the order identifier from a timestamp, matching the
// "ORD-<millisecond epoch>" wire format.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}

// NewMockTransactionID is the transaction reference used by the mock payment
// path.
func NewMockTransactionID(now time.Time) string {
	return fmt.Sprintf("MOCK-TXN-%d", now.UnixMilli())
}
