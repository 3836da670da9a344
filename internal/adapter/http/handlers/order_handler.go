package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"plantcart/internal/adapter/http/dto/request"
	"plantcart/internal/adapter/http/dto/response"
	"plantcart/internal/usecase"
	"plantcart/pkg"
)

// OrderHandler handles the public checkout endpoint.

type OrderHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewOrderHandler(uc usecase.ICheckoutUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Create validates and places an order, then initiates payment.
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[orders][handler] create invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items := make([]usecase.PlaceOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.PlaceOrderItem{ID: it.ID, Qty: it.Qty, Name: it.Name})
	}

	log.Printf("[orders][handler] create start items=%d phone=%s", len(items), req.Phone)
	result, err := h.usecase.PlaceOrder(c.Request.Context(), usecase.PlaceOrderInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		Zip:        req.Zip,
		Items:      items,
		ForcedMock: req.ForcedMock,
	})
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "VALIDATION_FAILED",
				"message": strings.Join(verr.Reasons, ", "),
				"reasons": verr.Reasons,
			})
			return
		}
		log.Printf("[orders][handler] create failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	message := "Payment Initiated"
	if result.Mock {
		message = "Order created (Mock)"
	}
	log.Printf("[orders][handler] create success order_id=%s mock=%t", result.OrderID, result.Mock)

	c.JSON(http.StatusOK, response.OrderCreatedResponse{
		Success:    true,
		Message:    message,
		ID:         result.OrderID,
		PaymentURL: result.PaymentURL,
	})
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", checkoutDetail(err, usecase.ErrProductNotFound, "Product not found"), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", checkoutDetail(err, usecase.ErrInsufficientStock, "Insufficient stock for"), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentInitFailed):
		return pkg.NewDomainError("PAYMENT_INIT_FAILED", "Failed to initiate payment", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// checkoutDetail rebuilds the client-facing message, keeping the product
// name the usecase attached to the sentinel.
func checkoutDetail(err error, sentinel error, prefix string) string {
	suffix := strings.TrimPrefix(err.Error(), sentinel.Error())
	suffix = strings.TrimSpace(strings.TrimPrefix(suffix, ":"))
	if suffix == "" {
		return prefix
	}
	return prefix + ": " + suffix
}
