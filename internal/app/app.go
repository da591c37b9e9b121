package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	marketHTTP "boostmarket/internal/controller/http"
	"boostmarket/internal/gateway"
	"boostmarket/internal/repo/persistent"
	"boostmarket/internal/usecase"
	"boostmarket/pkg/cache"
	"boostmarket/pkg/config"
	"boostmarket/pkg/database"
	"boostmarket/pkg/jwt"
	"boostmarket/pkg/logger"
	"boostmarket/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "boostmarket/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwtService,
	}, nil
}

func (a *App) setupRouter() *gin.Engine {
	// Initialize repositories
	accountRepo := persistent.NewAccountRepository(a.db)
	orderRepo := persistent.NewOrderRepository(a.db)
	transactionRepo := persistent.NewTransactionRepository(a.db)
	notificationRepo := persistent.NewNotificationRepository(a.db)
	checkoutRepo := persistent.NewCheckoutRepository(a.db)

	stripeGateway := gateway.NewStripeGateway(a.cfg.StripeSecretKey, a.cfg.PublicDomain, a.log)
	gatewayTimeout := time.Duration(a.cfg.GatewayTimeoutSeconds) * time.Second

	// Initialize use cases
	walletUseCase := usecase.NewWalletUseCase(accountRepo, transactionRepo, a.log)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, accountRepo, notificationRepo, walletUseCase, a.log)
	rechargeUseCase := usecase.NewRechargeUseCase(
		stripeGateway,
		checkoutRepo,
		accountRepo,
		notificationRepo,
		walletUseCase,
		gatewayTimeout,
		a.log,
	)
	accountUseCase := usecase.NewAccountUseCase(
		accountRepo,
		orderRepo,
		notificationRepo,
		a.jwtService,
		a.cfg.AdminUsername,
		a.cfg.AdminPassword,
		a.log,
	)

	// Initialize HTTP handlers
	authHandler := marketHTTP.NewAuthHandler(accountUseCase, a.log)
	accountHandler := marketHTTP.NewAccountHandler(accountUseCase, walletUseCase, a.log)
	orderHandler := marketHTTP.NewOrderHandler(orderUseCase, a.log)
	rechargeHandler := marketHTTP.NewRechargeHandler(rechargeUseCase, a.log)
	adminHandler := marketHTTP.NewAdminHandler(orderUseCase, accountUseCase, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	if a.redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
	}
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/admin/login", authHandler.AdminLogin)

		// The gateway redirects the browser here after payment with no bearer
		// token attached. Reconciliation is safe without auth: it is keyed by
		// session id alone, verifies payment with the gateway and credits at
		// most once.
		api.GET("/wallet/recharge/confirm", rechargeHandler.ConfirmRecharge)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.GET("/dashboard", accountHandler.Dashboard)
			protected.POST("/notifications/clear", accountHandler.ClearNotifications)

			protected.POST("/orders", orderHandler.PlaceOrder)
			protected.GET("/orders", orderHandler.ListOrders)

			protected.POST("/wallet/recharge", rechargeHandler.CreateCheckout)
			protected.GET("/wallet/transactions", accountHandler.GetTransactions)

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(usecase.RoleAdmin))
			{
				admin.GET("/orders/pending", adminHandler.ListPendingOrders)
				admin.POST("/orders/:order_id/decision", adminHandler.DecideOrder)
				admin.POST("/orders/assign", adminHandler.AssignOrder)
				admin.GET("/accounts", adminHandler.ListAccounts)
				admin.GET("/notifications", adminHandler.ListNotifications)
				admin.POST("/notifications/clear", adminHandler.ClearNotifications)
			}
		}
	}

	return r
}

func (a *App) Run() error {
	r := a.setupRouter()

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Boost market service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down boost market service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Boost market service exited")
	return nil
}
