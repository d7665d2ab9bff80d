package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "spendtrack/internal/app"
	"spendtrack/internal/bootstrap"
	"spendtrack/internal/cache"
	"spendtrack/internal/platform/rabbitmq"
	"spendtrack/internal/repository"
	"spendtrack/internal/transport/http/handler"
	"spendtrack/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app.Config.App.Name, app.Config.App.Env, app.StartedAt)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.DB)
	expenseRepo := repository.NewExpenseRepository(app.DB)

	var summaryCache appsvc.SummaryCache
	var invalidator appsvc.SummaryInvalidator
	if app.Redis != nil {
		sc := cache.NewSummaryCache(app.Redis, time.Duration(app.Config.Redis.SummaryTTLSeconds)*time.Second)
		summaryCache = sc
		invalidator = sc
	}

	var publisher appsvc.EventPublisher
	if app.MQConn != nil {
		publisher = rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.EventQueue)
	}

	authService := appsvc.NewAuthService(userRepo)
	expenseService := appsvc.NewExpenseService(expenseRepo, publisher, invalidator)
	statsService := appsvc.NewStatsService(expenseRepo, summaryCache)

	authHandler := handler.NewAuthHandler(authService, app.Config.Session)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	statsHandler := handler.NewStatisticsHandler(statsService)

	api := router.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	authed := api.Group("")
	authed.Use(middleware.RequireSession(app.Config.Session.Secret, app.Config.Session.CookieName))
	authed.GET("/expenses", expenseHandler.List)
	authed.POST("/expenses", expenseHandler.Create)
	authed.DELETE("/expenses/:id", expenseHandler.Delete)
	authed.GET("/statistics", statsHandler.Summary)

	return router
}
