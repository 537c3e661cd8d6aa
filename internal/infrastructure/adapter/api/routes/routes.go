package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/handler"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Account     *handler.AccountHandler
	Wallet      *handler.WalletHandler
	Transaction *handler.TransactionHandler
	Health      *handler.HealthHandler
}

// Options carries the route-level middlewares and optional endpoints.
// RateLimit and Metrics may be nil when the feature is disabled.
type Options struct {
	Auth        gin.HandlerFunc
	RateLimit   gin.HandlerFunc
	Metrics     http.Handler
	MetricsPath string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, opts Options) {
	router.GET("/health", handlers.Health.Health)

	if opts.Metrics != nil {
		router.GET(opts.MetricsPath, gin.WrapH(opts.Metrics))
	}

	api := router.Group("/api")
	if opts.RateLimit != nil {
		api.Use(opts.RateLimit)
	}

	// Public routes
	api.POST("/register", handlers.Account.Register)
	api.POST("/login", handlers.Account.Login)

	// Routes below act on the authenticated caller
	protected := api.Group("")
	protected.Use(opts.Auth)
	{
		wallet := protected.Group("/wallet")
		wallet.GET("/balance", handlers.Wallet.GetBalance)
		wallet.POST("/deposit", handlers.Wallet.Deposit)
		wallet.POST("/withdraw", handlers.Wallet.Withdraw)
		wallet.POST("/transfer", handlers.Wallet.Transfer)
		wallet.POST("/transaction", handlers.Wallet.Transaction)

		protected.GET("/transactions", handlers.Transaction.ListTransactions)
		protected.GET("/user", handlers.Account.ListRecipients)
		protected.GET("/users/me", handlers.Account.Me)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	observer middleware.HTTPObserver,
	allowedOrigins []string,
) {
	// Order matters: recovery first, then the request ID so later middlewares can log it
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	if observer != nil {
		router.Use(middleware.Metrics(observer, timeProvider))
	}
	router.Use(middleware.CORS(allowedOrigins))
}
