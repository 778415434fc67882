package routes

import (
	"time"

	_ "midtrans_gateway/docs" // swagger spec, generated by swag
	"midtrans_gateway/internal/adapter/http/handlers"
	"midtrans_gateway/internal/adapter/persistence/repository"
	"midtrans_gateway/internal/adapter/persistence/tokenstore"
	"midtrans_gateway/internal/config"
	"midtrans_gateway/internal/infrastructure/cache"
	"midtrans_gateway/internal/infrastructure/countries"
	"midtrans_gateway/internal/infrastructure/database"
	"midtrans_gateway/internal/infrastructure/payments"
	"midtrans_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires all dependencies and starts the server.
func Run(cfg *config.Config, logger *zap.Logger) {
	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config, logger *zap.Logger) {
	ddb := database.ConnectDynamoDB(logger)
	redisClient := cache.ConnectRedis(cfg.RedisURL, logger)

	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	transactionRepo := repository.NewTransactionDynamoRepository(ddb)
	tokenStore := tokenstore.NewRedisTokenStore(redisClient)

	gateway := payments.NewMidtransGateway(cfg, logger)
	countryService := countries.NewService()
	phones := usecase.NewPhoneNormalizer(countryService, cfg.DefaultCountryCode, logger)

	snapTokenUseCase := usecase.NewSnapTokenUseCase(
		invoiceRepo, clientRepo, tokenStore, gateway, phones,
		cfg.DefaultCountryCode, cfg.FinishBaseURL, logger,
	)
	notificationUseCase := usecase.NewNotificationUseCase(
		invoiceRepo, clientRepo, transactionRepo, gateway,
		cfg.ActiveServerKey(), logger,
	)

	checkoutHandler := handlers.NewCheckoutHandler(snapTokenUseCase, cfg, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, checkoutHandler, notificationHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()
		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
