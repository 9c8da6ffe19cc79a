package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	adminUsecases "streamdesk/internal/application/admin/usecases"
	broadcastUsecases "streamdesk/internal/application/broadcast/usecases"
	paymentUsecases "streamdesk/internal/application/payment/usecases"
	userUsecases "streamdesk/internal/application/user/usecases"
	"streamdesk/internal/infrastructure/cache"
	"streamdesk/internal/infrastructure/repository"
	"streamdesk/internal/interfaces/http/handlers"
	"streamdesk/internal/interfaces/http/middleware"
	"streamdesk/internal/shared/config"
	sharedDb "streamdesk/internal/shared/db"
	"streamdesk/internal/shared/logger"

	_ "streamdesk/docs"
)

// Router wires repositories, use cases and handlers for the admin API.
type Router struct {
	engine           *gin.Engine
	cfg              *config.ServerConfig
	healthHandler    *handlers.HealthHandler
	statsHandler     *handlers.StatisticsHandler
	userHandler      *handlers.UserHandler
	paymentHandler   *handlers.PaymentHandler
	broadcastHandler *handlers.BroadcastHandler
}

// RouterConfig carries everything the router needs beyond the database.
type RouterConfig struct {
	Server        *config.ServerConfig
	Broadcast     *config.BroadcastConfig
	StatsCacheTTL time.Duration
}

// NewRouter builds the full dependency graph for the HTTP surface. The
// redis client may be nil, which disables statistics caching.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *RouterConfig, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	broadcastRepo := repository.NewBroadcastRepository(database)
	statsRepo := repository.NewStatsRepository(database)

	txManager := sharedDb.NewTransactionManager(database)
	statsCache := cache.NewStatsCache(redisClient, cfg.StatsCacheTTL)

	getStatisticsUC := adminUsecases.NewGetStatisticsUseCase(statsRepo, statsCache, log)

	listUsersUC := userUsecases.NewListUsersUseCase(userRepo, log)
	getUserDetailUC := userUsecases.NewGetUserDetailUseCase(userRepo, paymentRepo, log)
	deleteUserUC := userUsecases.NewDeleteUserUseCase(userRepo, paymentRepo, txManager, log)
	grantSubscriptionUC := userUsecases.NewGrantSubscriptionUseCase(userRepo, log)

	listPaymentsUC := paymentUsecases.NewListPaymentsUseCase(paymentRepo, log)
	approvePaymentUC := paymentUsecases.NewApprovePaymentUseCase(paymentRepo, userRepo, txManager, statsCache, log)
	rejectPaymentUC := paymentUsecases.NewRejectPaymentUseCase(paymentRepo, log)

	sendBroadcastUC := broadcastUsecases.NewSendBroadcastUseCase(broadcastRepo, userRepo, cfg.Broadcast.MaxRecipients, log)
	listBroadcastsUC := broadcastUsecases.NewListBroadcastsUseCase(broadcastRepo, log)

	return &Router{
		engine:           engine,
		cfg:              cfg.Server,
		healthHandler:    handlers.NewHealthHandler(),
		statsHandler:     handlers.NewStatisticsHandler(getStatisticsUC),
		userHandler:      handlers.NewUserHandler(listUsersUC, getUserDetailUC, deleteUserUC, grantSubscriptionUC),
		paymentHandler:   handlers.NewPaymentHandler(listPaymentsUC, approvePaymentUC, rejectPaymentUC),
		broadcastHandler: handlers.NewBroadcastHandler(sendBroadcastUC, listBroadcastsUC),
	}
}

// SetupRoutes configures middleware and registers all endpoints.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.CORS(r.cfg.AllowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")
	api.GET("/health", r.healthHandler.Check)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminToken(r.cfg.AdminToken))
	{
		admin.GET("/statistics", r.statsHandler.GetStatistics)

		admin.GET("/users", r.userHandler.ListUsers)
		admin.GET("/users/:telegram_id", r.userHandler.GetUserDetail)
		admin.PUT("/users/:telegram_id/subscription", r.userHandler.GrantSubscription)
		admin.DELETE("/users/:telegram_id", r.userHandler.DeleteUser)

		admin.GET("/payments", r.paymentHandler.ListPayments)
		admin.PUT("/payments/:payment_id/approve", r.paymentHandler.ApprovePayment)
		admin.PUT("/payments/:payment_id/reject", r.paymentHandler.RejectPayment)

		admin.GET("/broadcasts", r.broadcastHandler.ListBroadcasts)
		admin.POST("/broadcast", r.broadcastHandler.SendBroadcast)
	}
}

// GetEngine exposes the underlying engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
