package routes

import (
	"net/http"

	_ "piecework_tracker/docs" // swagger docs
	"piecework_tracker/internal/adapter/http/handlers"
	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/infrastructure/metrics"
	"piecework_tracker/internal/usecase"
	"piecework_tracker/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies is everything the router needs. Metrics may be nil.
type Dependencies struct {
	Orders        usecase.IOrderUseCase
	Earnings      usecase.IEarningsUseCase
	Reports       usecase.IReportUseCase
	Sync          usecase.ISyncUseCase
	Notifications usecase.INotificationUseCase

	PlanThreshold entities.Money
	AllowOrigins  []string
	Metrics       *metrics.Metrics
	Logger        *logger.Logger
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logger.Default()
	}

	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	var recorder handlers.Recorder
	if deps.Metrics != nil {
		recorder = deps.Metrics
	}

	orderHandler := handlers.NewOrderHandler(deps.Orders, recorder)
	earningsHandler := handlers.NewEarningsHandler(deps.Earnings, deps.PlanThreshold)
	reportHandler := handlers.NewReportHandler(deps.Reports, deps.Earnings, recorder)
	syncHandler := handlers.NewSyncHandler(deps.Sync, recorder)
	notificationHandler := handlers.NewNotificationHandler(deps.Notifications)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addEarningsRoutes(v1, earningsHandler)
	addReportRoutes(v1, reportHandler)
	addSyncRoutes(v1, syncHandler)
	addNotificationRoutes(v1, notificationHandler)

	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(requestLogger(deps.Logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Errorw("[http][router] recovered from panic", "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}

	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
	}
	if len(deps.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.AllowOrigins
	}
	router.Use(cors.New(corsCfg))
}
