package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentInitFailed = errors.New("payment initiation failed")
)

// ValidationError carries the machine-readable reason list for a rejected
// order submission.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

var phonePattern = regexp.MustCompile(`^\d{10}$`)

const defaultShippingFee = 150.0

// PlaceOrderItem is one requested line. Name is only used for error messages
// when the product cannot be resolved; price and name persisted on the order
// always come from the catalog.
type PlaceOrderItem struct {
	ID   string
	Qty  int
	Name string
}

type PlaceOrderInput struct {
	Name       string
	Phone      string
	Address    string
	City       string
	Zip        string
	Items      []PlaceOrderItem
	ForcedMock bool
}

type PlaceOrderResult struct {
	OrderID    string
	PaymentURL string
	Mock       bool
}

// ICheckoutUseCase validates an order submission against catalog truth,
// persists the order and initiates payment.

type ICheckoutUseCase interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderResult, error)
}

// CheckoutUseCase recomputes totals from the catalog (client-supplied prices
// and totals are ignored entirely), gates on stock sufficiency, then either
// completes the order synchronously in mock mode or opens a hosted checkout
// session with the payment provider.
//
// The order row is inserted before the provider call and is not rolled back
// on provider failure: an abandoned pending_payment order is accepted
// behavior, a half-written one is not possible.

type CheckoutUseCase struct {
	orders      interfaces.IOrderRepository
	products    interfaces.IProductRepository
	stock       *StockUseCase
	gateway     interfaces.IPaymentGateway
	shippingFee float64
	appBaseURL  string
	now         func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(orders interfaces.IOrderRepository, products interfaces.IProductRepository, stock *StockUseCase, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	fee := defaultShippingFee
	if v := strings.TrimSpace(os.Getenv("SHIPPING_FEE")); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			fee = parsed
		}
	}
	return &CheckoutUseCase{
		orders:      orders,
		products:    products,
		stock:       stock,
		gateway:     gateway,
		shippingFee: fee,
		appBaseURL:  getenvDefault("APP_BE_URL", "http://localhost:8080"),
		now:         time.Now,
	}
}

func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderResult, error) {
	if verr := validatePlaceOrder(in); verr != nil {
		log.Printf("[checkout][usecase] rejected submission reasons=%v", verr.Reasons)
		return PlaceOrderResult{}, verr
	}

	now := u.now().UTC()
	orderID := entities.NewOrderID(now)

	// Server-side price verification: every line is re-priced from the
	// catalog and summed here; whatever the client claimed is discarded.
	var calculatedTotal float64
	verified := make([]entities.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		product, err := u.products.GetByID(ctx, item.ID)
		if err != nil {
			log.Printf("[checkout][usecase] product lookup failed order_id=%s product_id=%s err=%v", orderID, item.ID, err)
			return PlaceOrderResult{}, err
		}
		if product.ID == "" {
			name := item.Name
			if name == "" {
				name = item.ID
			}
			return PlaceOrderResult{}, fmt.Errorf("%w: %s", ErrProductNotFound, name)
		}
		if product.Qty < item.Qty {
			return PlaceOrderResult{}, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
		}

		calculatedTotal += product.Price * float64(item.Qty)
		verified = append(verified, entities.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Qty:       item.Qty,
			Price:     product.Price,
		})
	}

	total := calculatedTotal + u.shippingFee
	log.Printf("[checkout][usecase] order verified order_id=%s items=%d total=%.2f", orderID, len(verified), total)

	if in.ForcedMock || u.gateway == nil || isPaymentGatewayMockEnabled() {
		return u.placeMockOrder(ctx, orderID, in, verified, total, now)
	}

	order := entities.Order{
		ID:            orderID,
		Name:          in.Name,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		Zip:           in.Zip,
		Items:         verified,
		Total:         total,
		Status:        entities.OrderStatusPendingPayment,
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     now,
	}
	if _, err := u.orders.Insert(ctx, order); err != nil {
		log.Printf("[checkout][usecase] order insert failed order_id=%s err=%v", orderID, err)
		return PlaceOrderResult{}, err
	}

	// Round, don't truncate: fractional catalog prices accumulate float
	// representation error and a plain cast would short the amount a paisa.
	amountMinor := int64(math.Round(total * 100))
	redirectURL := fmt.Sprintf("%s/api/phonepe/redirect?orderId=%s", u.appBaseURL, orderID)

	session, err := u.gateway.CreateCheckout(ctx, orderID, amountMinor, redirectURL)
	if err != nil {
		// The pending order stays behind; the customer resubmitting creates
		// a fresh one.
		log.Printf("[checkout][usecase] payment initiation failed order_id=%s err=%v", orderID, err)
		return PlaceOrderResult{}, fmt.Errorf("%w: %v", ErrPaymentInitFailed, err)
	}

	log.Printf("[checkout][usecase] payment initiated order_id=%s", orderID)
	return PlaceOrderResult{OrderID: orderID, PaymentURL: session.PaymentURL}, nil
}

// placeMockOrder completes the order synchronously: inserted already paid,
// stock decremented immediately. Fresh order, so there is no idempotency
// concern here.
func (u *CheckoutUseCase) placeMockOrder(ctx context.Context, orderID string, in PlaceOrderInput, items []entities.OrderItem, total float64, now time.Time) (PlaceOrderResult, error) {
	order := entities.Order{
		ID:            orderID,
		Name:          in.Name,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		Zip:           in.Zip,
		Items:         items,
		Total:         total,
		Status:        entities.OrderStatusNew,
		PaymentStatus: entities.PaymentStatusPaid,
		TransactionID: entities.NewMockTransactionID(now),
		CreatedAt:     now,
	}
	if _, err := u.orders.Insert(ctx, order); err != nil {
		log.Printf("[checkout][usecase] mock order insert failed order_id=%s err=%v", orderID, err)
		return PlaceOrderResult{}, err
	}

	if err := u.stock.DecrementForItems(ctx, items); err != nil {
		log.Printf("[checkout][usecase] mock stock decrement failed order_id=%s err=%v", orderID, err)
	}

	log.Printf("[checkout][usecase] mock order created order_id=%s total=%.2f", orderID, total)
	return PlaceOrderResult{OrderID: orderID, Mock: true}, nil
}

func validatePlaceOrder(in PlaceOrderInput) *ValidationError {
	var reasons []string
	if strings.TrimSpace(in.Name) == "" {
		reasons = append(reasons, "Customer name is required")
	}
	if !phonePattern.MatchString(strings.TrimSpace(in.Phone)) {
		reasons = append(reasons, "Valid 10-digit phone number is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		reasons = append(reasons, "Address is required")
	}
	if len(in.Items) == 0 {
		reasons = append(reasons, "Order must contain items")
	} else {
		for _, item := range in.Items {
			if item.ID == "" || item.Qty <= 0 {
				reasons = append(reasons, "Invalid items in order (missing ID or invalid Qty)")
				break
			}
		}
	}

	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
