package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"plantcart/internal/usecase/interfaces"
)

var ErrOrderNotFound = errors.New("order not found")

// RedirectOutcome classifies the browser-return path so the handler can pick
// the storefront route to land the customer on.
type RedirectOutcome string

const (
	RedirectOutcomeSuccess RedirectOutcome = "success"
	RedirectOutcomeFailure RedirectOutcome = "failure"
	RedirectOutcomePending RedirectOutcome = "pending"
	RedirectOutcomeError   RedirectOutcome = "error"
)

// Provider state codes.
const (
	providerStateCompleted = "COMPLETED"
	providerStateFailed    = "FAILED"
)

// WebhookEvent is the parsed server-to-server notification.
type WebhookEvent struct {
	Event           string
	State           string
	MerchantOrderID string
	TransactionID   string
}

// IReconcileUseCase applies payment outcomes to orders. Both trigger paths
// (browser redirect and provider webhook) converge on the same conditional
// transition.

type IReconcileUseCase interface {
	ResolveRedirect(ctx context.Context, orderID string) RedirectOutcome
	HandleWebhook(ctx context.Context, ev WebhookEvent) error
}

// ReconcileUseCase is the payment-outcome state machine.
//
// The idempotency guarantee sits in IOrderRepository.MarkPaid: a conditional
// write that only applies while payment_status is not "paid". Stock is
// decremented strictly and only when that write applied, so duplicate
// webhook delivery, a racing redirect, or any replay resolves to exactly one
// decrement.

type ReconcileUseCase struct {
	orders  interfaces.IOrderRepository
	stock   *StockUseCase
	gateway interfaces.IPaymentGateway
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(orders interfaces.IOrderRepository, stock *StockUseCase, gateway interfaces.IPaymentGateway) *ReconcileUseCase {
	return &ReconcileUseCase{orders: orders, stock: stock, gateway: gateway}
}

// confirmPaid is the shared success transition: conditionally mark the order
// paid and, only when the write applied, run the one-time stock decrement
// from the stored item snapshot.
func (u *ReconcileUseCase) confirmPaid(ctx context.Context, orderID, transactionID string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return ErrOrderNotFound
	}

	order, applied, err := u.orders.MarkPaid(ctx, orderID, transactionID)
	if err != nil {
		return err
	}
	if !applied {
		log.Printf("[reconcile][usecase] duplicate confirmation ignored order_id=%s", orderID)
		return nil
	}

	log.Printf("[reconcile][usecase] order confirmed paid order_id=%s txn=%s", orderID, transactionID)
	if err := u.stock.DecrementForItems(ctx, order.Items); err != nil {
		// The order is already paid; failing here would only trigger a
		// provider retry that the idempotency check swallows. Log loudly
		// and acknowledge.
		log.Printf("[reconcile][usecase] stock decrement incomplete order_id=%s err=%v", orderID, err)
	}
	return nil
}

func (u *ReconcileUseCase) markFailed(ctx context.Context, orderID string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return ErrOrderNotFound
	}

	if _, err := u.orders.MarkFailed(ctx, orderID); err != nil {
		return err
	}
	log.Printf("[reconcile][usecase] order marked failed order_id=%s", orderID)
	return nil
}

// ResolveRedirect handles the browser-return path. It queries the provider's
// status endpoint and applies the transition best-effort; whatever happens,
// the customer always gets a navigable outcome, never a raw error.
func (u *ReconcileUseCase) ResolveRedirect(ctx context.Context, orderID string) RedirectOutcome {
	if strings.TrimSpace(orderID) == "" {
		return RedirectOutcomeError
	}
	if u.gateway == nil {
		log.Printf("[reconcile][usecase] redirect without configured gateway order_id=%s", orderID)
		return RedirectOutcomeError
	}

	state, err := u.gateway.CheckStatus(ctx, orderID)
	if err != nil {
		log.Printf("[reconcile][usecase] redirect status check failed order_id=%s err=%v", orderID, err)
		return RedirectOutcomeError
	}
	log.Printf("[reconcile][usecase] redirect status order_id=%s state=%s", orderID, state.State)

	switch state.State {
	case providerStateCompleted:
		if err := u.confirmPaid(ctx, orderID, state.TransactionID); err != nil {
			log.Printf("[reconcile][usecase] redirect confirm failed order_id=%s err=%v", orderID, err)
			return RedirectOutcomeError
		}
		return RedirectOutcomeSuccess
	case providerStateFailed:
		if err := u.markFailed(ctx, orderID); err != nil {
			log.Printf("[reconcile][usecase] redirect fail-mark failed order_id=%s err=%v", orderID, err)
			return RedirectOutcomeError
		}
		return RedirectOutcomeFailure
	default:
		return RedirectOutcomePending
	}
}

// HandleWebhook handles the authoritative server-to-server path. Terminal
// outcomes are applied and acknowledged; anything unrecognized is
// acknowledged untouched so the provider does not retry forever.
func (u *ReconcileUseCase) HandleWebhook(ctx context.Context, ev WebhookEvent) error {
	if strings.TrimSpace(ev.MerchantOrderID) == "" {
		return ErrOrderNotFound
	}
	log.Printf("[reconcile][usecase] webhook event=%s state=%s order_id=%s", ev.Event, ev.State, ev.MerchantOrderID)

	switch {
	case ev.Event == "checkout.order.completed" && ev.State == providerStateCompleted:
		return u.confirmPaid(ctx, ev.MerchantOrderID, ev.TransactionID)
	case ev.Event == "checkout.order.failed" || ev.State == providerStateFailed:
		return u.markFailed(ctx, ev.MerchantOrderID)
	default:
		// Ambiguous or pending: no persistent action.
		return nil
	}
}
