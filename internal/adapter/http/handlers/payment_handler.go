package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"plantcart/internal/adapter/http/dto/request"
	"plantcart/internal/usecase"
	"plantcart/pkg"
)

// PaymentHandler handles the two provider return paths: the customer's
// browser redirect and the authoritative server-to-server webhook.

type PaymentHandler struct {
	usecase usecase.IReconcileUseCase
}

func NewPaymentHandler(uc usecase.IReconcileUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Redirect lands the customer back from hosted checkout. Whatever happens,
// the customer is sent somewhere navigable; errors collapse to an error
// outcome rather than a raw status page.
func (h *PaymentHandler) Redirect(c *gin.Context) {
	orderID := strings.TrimSpace(c.Query("orderId"))
	log.Printf("[payment][handler] redirect start order_id=%s", orderID)

	outcome := usecase.RedirectOutcomeError
	if orderID != "" {
		outcome = h.usecase.ResolveRedirect(c.Request.Context(), orderID)
	}

	target := fmt.Sprintf("/?payment=%s&order=%s", outcome, url.QueryEscape(orderID))
	log.Printf("[payment][handler] redirect done order_id=%s outcome=%s", orderID, outcome)
	c.Redirect(http.StatusFound, target)
}

// Callback handles the provider webhook. Authentication first, then parse,
// then hand off; only an applied terminal outcome mutates anything.
func (h *PaymentHandler) Callback(c *gin.Context) {
	if !webhookAuthorized(c.GetHeader("Authorization")) {
		log.Printf("[payment][handler] callback unauthorized")
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid webhook credentials", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var req request.PhonePeWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] callback invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid webhook body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payload, err := req.DecodePayload()
	if err != nil {
		log.Printf("[payment][handler] callback malformed payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid webhook body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	err = h.usecase.HandleWebhook(c.Request.Context(), usecase.WebhookEvent{
		Event:           req.Event,
		State:           payload.State,
		MerchantOrderID: payload.MerchantOrderID,
		TransactionID:   payload.ResolveTransactionID(),
	})
	if err != nil {
		log.Printf("[payment][handler] callback failed order_id=%s err=%v", payload.MerchantOrderID, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] callback handled event=%s order_id=%s", req.Event, payload.MerchantOrderID)
	c.String(http.StatusOK, "OK")
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// webhookAuthorized checks the provider's SHA256(username:password) header
// scheme. Unconfigured credentials skip the check so local setups still
// receive callbacks, loudly.
func webhookAuthorized(header string) bool {
	username := strings.TrimSpace(os.Getenv("PHONEPE_WEBHOOK_USERNAME"))
	password := strings.TrimSpace(os.Getenv("PHONEPE_WEBHOOK_PASSWORD"))
	if username == "" || password == "" {
		log.Printf("[payment][handler] webhook credentials not configured; skipping auth check")
		return true
	}

	sum := sha256.Sum256([]byte(username + ":" + password))
	expected := hex.EncodeToString(sum[:])

	header = strings.TrimSpace(header)
	return strings.EqualFold(header, expected) || strings.EqualFold(header, "SHA256("+expected+")")
}
