package entities

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]OrderStatus{
		{OrderStatusPendingPayment, OrderStatusNew},
		{OrderStatusNew, OrderStatusInProcess},
		{OrderStatusInProcess, OrderStatusInTransit},
		{OrderStatusInTransit, OrderStatusCompleted},
		{OrderStatusNew, OrderStatusNew},
	}
	for _, tc := range allowed {
		if !CanTransition(tc[0], tc[1]) {
			t.Fatalf("expected %s -> %s to be allowed", tc[0], tc[1])
		}
	}

	denied := [][2]OrderStatus{
		{OrderStatusNew, OrderStatusPendingPayment},
		{OrderStatusCompleted, OrderStatusNew},
		{OrderStatusInTransit, OrderStatusInProcess},
		{OrderStatusNew, OrderStatusInTransit},
		{OrderStatusPendingPayment, OrderStatusCompleted},
	}
	for _, tc := range denied {
		if CanTransition(tc[0], tc[1]) {
			t.Fatalf("expected %s -> %s to be rejected", tc[0], tc[1])
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPendingPayment, OrderStatusNew, OrderStatusInProcess, OrderStatusInTransit, OrderStatusCompleted} {
		if !ValidOrderStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ValidOrderStatus("shipped") {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestTimeDerivedIDs(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	if got := NewOrderID(at); got != "ORD-1700000000000" {
		t.Fatalf("unexpected order id: %s", got)
	}
	if got := NewMockTransactionID(at); got != "MOCK-TXN-1700000000000" {
		t.Fatalf("unexpected txn id: %s", got)
	}
	if got := NewProductID(at); got != "P1700000000000" {
		t.Fatalf("unexpected product id: %s", got)
	}
}
