package routes

import (
	"log"
	_ "nibog_payments/docs" // This will be auto-generated
	"nibog_payments/internal/adapter/cache"
	"nibog_payments/internal/adapter/http/handlers"
	repository2 "nibog_payments/internal/adapter/persistence/repository"
	"nibog_payments/internal/infrastructure/database"
	"nibog_payments/internal/infrastructure/phonepe"
	"nibog_payments/internal/usecase"
	"nibog_payments/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	transactionRepo := repository2.NewPaymentTransactionDynamoRepository(ddb)

	var recoveryCache interfaces.IRecoveryCache
	if os.Getenv("RECOVERY_CACHE_MEMORY") == "1" {
		log.Printf("[routes] recovery cache backend=memory")
		recoveryCache = cache.NewMemoryRecoveryCache()
	} else {
		recoveryCache = repository2.NewRecoveryCacheDynamoRepository(ddb)
	}

	cfg := phonepe.ResolveConfig(phonepe.EnvironmentFromEnv())
	if err := phonepe.LogConfig(cfg); err != nil {
		log.Printf("[routes] gateway config has critical issues, payment endpoints will refuse to send: %v", err)
	}
	gateway := phonepe.NewGateway(cfg, phonepe.NewChecksumEngine())

	paymentUseCase := usecase.NewPaymentInitiationUseCase(bookingRepo, transactionRepo, gateway)
	reconciliationUseCase := usecase.NewBookingReconciliationUseCase(
		bookingRepo,
		transactionRepo,
		gateway,
		recoveryCache,
		os.Getenv("RECONCILE_DISABLE_HEURISTIC") == "1",
	)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	confirmationHandler := handlers.NewConfirmationHandler(reconciliationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, confirmationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
