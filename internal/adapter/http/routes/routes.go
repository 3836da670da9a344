package routes

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "plantcart/docs" // This will be auto-generated
	"plantcart/internal/adapter/http/handlers"
	"plantcart/internal/adapter/http/middleware"
	"plantcart/internal/adapter/persistence/memory"
	"plantcart/internal/adapter/persistence/repository"
	"plantcart/internal/infrastructure/database"
	"plantcart/internal/infrastructure/payments"
	"plantcart/internal/usecase"
	"plantcart/internal/usecase/interfaces"
)

var router = gin.Default()

const defaultPort = "8080"

const cleanupInterval = 24 * time.Hour

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	productRepo, orderRepo, categoryRepo := buildRepositories()

	database.SeedCategories(context.Background(), categoryRepo)

	var paymentGateway interfaces.IPaymentGateway
	gateway, err := payments.NewPhonePeGateway()
	if err != nil {
		log.Printf("PhonePe gateway not configured, orders fall back to mock payments: %v", err)
	} else {
		paymentGateway = gateway
	}

	stockUseCase := usecase.NewStockUseCase(productRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, productRepo, stockUseCase, paymentGateway)
	reconcileUseCase := usecase.NewReconcileUseCase(orderRepo, stockUseCase, paymentGateway)
	productUseCase := usecase.NewProductUseCase(productRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	orderAdminUseCase := usecase.NewOrderAdminUseCase(orderRepo)
	authUseCase := usecase.NewAuthUseCase()

	startCleanupSweep(orderRepo)

	orderHandler := handlers.NewOrderHandler(checkoutUseCase)
	paymentHandler := handlers.NewPaymentHandler(reconcileUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	categoryHandler := handlers.NewCategoryHandler(categoryUseCase)
	orderAdminHandler := handlers.NewOrderAdminHandler(orderAdminUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addStorefrontRoutes(api, productHandler, categoryHandler, orderHandler, paymentHandler)
	addAdminRoutes(api, authUseCase, authHandler, productHandler, orderAdminHandler)
}

// buildRepositories picks the store backend. DynamoDB is the default;
// STORE_BACKEND=memory swaps in the in-process store with identical
// semantics, used for local runs and tests.
func buildRepositories() (interfaces.IProductRepository, interfaces.IOrderRepository, interfaces.ICategoryRepository) {
	backend := strings.ToLower(strings.TrimSpace(os.Getenv("STORE_BACKEND")))
	if backend == "memory" {
		log.Printf("[routes] using in-memory store backend")
		return memory.NewProductRepositoryMemory(), memory.NewOrderRepositoryMemory(), memory.NewCategoryRepositoryMemory()
	}

	ddb := database.ConnectDynamoDB()
	return repository.NewProductDynamoRepository(ddb),
		repository.NewOrderDynamoRepository(ddb),
		repository.NewCategoryDynamoRepository(ddb)
}

// startCleanupSweep runs the retention sweep once at startup and then every
// 24h for the life of the process.
func startCleanupSweep(orderRepo interfaces.IOrderRepository) {
	cleanup := usecase.NewCleanupUseCase(orderRepo)
	go func() {
		cleanup.Run(context.Background())
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			cleanup.Run(context.Background())
		}
	}()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
