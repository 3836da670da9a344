package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"plantcart/internal/adapter/http/dto/request"
	"plantcart/internal/adapter/http/dto/response"
	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase"
	"plantcart/pkg"
)

// OrderAdminHandler handles the back-office order endpoints.

type OrderAdminHandler struct {
	usecase usecase.IOrderAdminUseCase
}

func NewOrderAdminHandler(uc usecase.IOrderAdminUseCase) *OrderAdminHandler {
	return &OrderAdminHandler{usecase: uc}
}

// List returns orders for the back-office, newest first. Orders still
// waiting on payment are not listed.
func (h *OrderAdminHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[orders][handler] list failed err=%v", err)
		appErr := mapOrderAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderAdminHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[orders][handler] get failed order_id=%s err=%v", id, err)
		appErr := mapOrderAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateStatus advances an order through the fulfillment flow.
func (h *OrderAdminHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var req request.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[orders][handler] status update start order_id=%s status=%s", id, req.Status)
	order, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.OrderStatus(req.Status))
	if err != nil {
		log.Printf("[orders][handler] status update failed order_id=%s err=%v", id, err)
		appErr := mapOrderAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderAdminHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[orders][handler] delete start order_id=%s", id)
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[orders][handler] delete failed order_id=%s err=%v", id, err)
		appErr := mapOrderAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapOrderAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid order status", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Order status can only move forward", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
