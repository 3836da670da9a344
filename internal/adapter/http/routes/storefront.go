package routes

import (
	"github.com/gin-gonic/gin"

	"plantcart/internal/adapter/http/handlers"
)

const (
	PathProducts   = "/products"
	PathCategories = "/categories"
	PathOrders     = "/orders"
	PathPhonePe    = "/phonepe"
)

// addStorefrontRoutes wires the unauthenticated customer-facing endpoints:
// catalog reads, checkout, and the payment provider's two return paths.
func addStorefrontRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, categoryHandler *handlers.CategoryHandler, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	rg.GET(PathProducts, productHandler.List)
	rg.GET(PathProducts+"/:id", productHandler.GetByID)
	rg.GET(PathCategories, categoryHandler.List)

	rg.POST(PathOrders, orderHandler.Create)

	phonepe := rg.Group(PathPhonePe)
	{
		phonepe.GET("/redirect", paymentHandler.Redirect)
		phonepe.POST("/callback", paymentHandler.Callback)
	}
}
