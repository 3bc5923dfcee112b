package server

import (
	"fmt"
	"net/http"

	"auction-board/internal/dashboard"
	"auction-board/internal/live"
	"auction-board/internal/metrics"
	handler "auction-board/services/board/handler"
	"auction-board/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options holds the optional pieces of the router
type Options struct {
	// Metrics enables request metrics; nil disables them
	Metrics *metrics.Metrics
	// Gatherer backs GET /metrics. Default: prometheus.DefaultGatherer
	Gatherer prometheus.Gatherer
	// Hub serves GET /ws; nil disables the live socket
	Hub *live.Hub
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(boardService handler.BoardServiceInterface, opts Options) (*gin.Engine, error) {
	router := gin.New() // no default middleware, logging goes through utils

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		utils.Error("recovered from panic", map[string]any{"panic": fmt.Sprint(recovered), "path": c.Request.URL.Path})
		utils.AbortWithJSONError(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", recovered), "internal server error")
	}))
	router.Use(RequestLoggerMiddleware)
	if opts.Metrics != nil {
		router.Use(MetricsMiddleware(opts.Metrics))
	}

	router.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path), "route not found")
	})

	tmpl, err := dashboard.Template()
	if err != nil {
		return nil, fmt.Errorf("server: failed to parse page templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	boardHandler := handler.NewBoardHandler(boardService)

	router.GET("/", boardHandler.DashboardPageHandler)
	router.GET("/healthz", boardHandler.HealthHandler)

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if opts.Hub != nil {
		router.GET("/ws", opts.Hub.ServeWS)
	}

	api := router.Group("/api")
	{
		api.GET("/dashboard", boardHandler.DashboardHandler)
		api.GET("/activities", boardHandler.ListActivitiesHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("", boardHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", boardHandler.GetAuctionHandler)
	}

	counter := api.Group("/counter")
	{
		counter.GET("", boardHandler.GetCounterHandler)
		counter.POST("/increment", boardHandler.IncrementCounterHandler)
		counter.POST("/decrement", boardHandler.DecrementCounterHandler)
		counter.POST("/reset", boardHandler.ResetCounterHandler)
	}

	users := api.Group("/users")
	{
		users.GET("", boardHandler.GetUsersHandler)
		users.POST("", boardHandler.AddUserHandler)
		users.POST("/auctioneer", boardHandler.AddAuctioneerHandler)
	}

	return router, nil
}
