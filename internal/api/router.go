package api

import (
	"net/http"

	v1 "github.com/lunaria/lunaria/internal/api/v1"
	"github.com/lunaria/lunaria/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Dashboard    *v1.DashboardHandler
	Stats        *v1.StatsHandler
	Customer     *v1.CustomerHandler
	Subscription *v1.SubscriptionHandler
	Horoscope    *v1.HoroscopeHandler
	Message      *v1.MessageHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Dashboard routes
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/customers", handlers.Dashboard.GetCustomerStats)
		dashboard.GET("/horoscopes", handlers.Dashboard.GetHoroscopeCompletion)
		dashboard.GET("/expiring", handlers.Dashboard.GetExpiringSubscriptions)
	}

	// Stats routes
	stats := router.Group("/stats")
	{
		stats.GET("/summary", handlers.Stats.GetSummary)
		stats.GET("/revenue", handlers.Stats.GetRevenue)
		stats.GET("/periods/:period", handlers.Stats.GetPeriodStats)
	}

	// Customer routes
	customers := router.Group("/customers")
	{
		customers.GET("", handlers.Customer.ListCustomers)
		customers.GET("/:id", handlers.Customer.GetCustomer)
		customers.PUT("/:id", handlers.Customer.UpdateCustomer)
		customers.GET("/:id/subscriptions", handlers.Customer.GetSubscriptionHistory)
		customers.GET("/:id/horoscopes", handlers.Customer.GetHoroscopes)
		customers.GET("/:id/timeline", handlers.Customer.GetTimeline)
	}

	// Subscription routes
	subscriptions := router.Group("/subscriptions")
	{
		subscriptions.POST("", handlers.Subscription.CreateManual)
		subscriptions.POST("/:id/cancel", handlers.Subscription.Cancel)
	}

	// Horoscope routes
	horoscopes := router.Group("/horoscopes")
	{
		horoscopes.GET("", handlers.Horoscope.List)
		horoscopes.GET("/stats", handlers.Horoscope.GetArchiveStats)
		horoscopes.GET("/:date", handlers.Horoscope.GetByDate)
	}

	// Message routes
	messages := router.Group("/messages")
	{
		messages.GET("", handlers.Message.List)
		messages.GET("/stats", handlers.Message.GetStats)
		messages.GET("/senders", handlers.Message.ListSenders)
	}
}
