package routes

import (
	"github.com/gin-gonic/gin"

	"plantcart/internal/adapter/http/handlers"
	"plantcart/internal/adapter/http/middleware"
	"plantcart/internal/usecase"
)

const PathAuth = "/auth"

// addAdminRoutes wires the back-office. Login is public; everything else
// requires the bearer token it issues.
func addAdminRoutes(rg *gin.RouterGroup, auth usecase.IAuthUseCase, authHandler *handlers.AuthHandler, productHandler *handlers.ProductHandler, orderAdminHandler *handlers.OrderAdminHandler) {
	rg.POST(PathAuth+"/login", authHandler.Login)

	authed := rg.Group("")
	authed.Use(middleware.AdminAuth(auth))
	{
		authed.GET(PathAuth+"/verify", authHandler.Verify)

		authed.POST(PathProducts, productHandler.Save)
		authed.PUT(PathProducts+"/:id", productHandler.Update)
		authed.DELETE(PathProducts+"/:id", productHandler.Delete)

		authed.GET(PathOrders, orderAdminHandler.List)
		authed.GET(PathOrders+"/:id", orderAdminHandler.GetByID)
		authed.PUT(PathOrders+"/:id", orderAdminHandler.UpdateStatus)
		authed.DELETE(PathOrders+"/:id", orderAdminHandler.Delete)
	}
}
