package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"payment-automation/internal/cache"
)

// Pinger reports backend liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig carries everything the router needs to assemble routes.
type RouterConfig struct {
	Prefix        string
	ServiceName   string
	Customers     *CustomerHandler
	Products      *ProductHandler
	Orders        *OrderHandler
	Payments      *PaymentHandler
	Emails        *EmailHandler
	Webhooks      *WebhookHandler
	Cache         cache.Cache
	CacheTTL      time.Duration
	RateLimitMax  int
	RateLimitSpan time.Duration
	DB            Pinger
	Production    bool
}

// NewRouter builds the gin engine with middleware and every route mounted
// under the configured prefix.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(RequestLogger())
	r.Use(CORS())
	r.Use(SecurityHeaders())
	if cfg.RateLimitMax > 0 {
		r.Use(RateLimit(cfg.RateLimitMax, cfg.RateLimitSpan))
	}
	if cfg.Cache != nil {
		r.Use(CacheResponses(cfg.Cache, cfg.CacheTTL))
	}

	r.GET("/health", healthCheck(cfg.DB))
	r.GET("/api-docs", Docs)
	r.GET("/api-docs/openapi.yaml", DocsSpec)

	api := r.Group(cfg.Prefix)

	customers := api.Group("/customers")
	customers.POST("", cfg.Customers.Create)
	customers.GET("", cfg.Customers.List)
	customers.GET("/:id", cfg.Customers.Get)
	customers.PUT("/:id", cfg.Customers.Update)
	customers.DELETE("/:id", cfg.Customers.Delete)

	products := api.Group("/products")
	products.POST("", cfg.Products.Create)
	products.GET("", cfg.Products.List)
	products.GET("/:id", cfg.Products.Get)
	products.PUT("/:id", cfg.Products.Update)
	products.DELETE("/:id", cfg.Products.Delete)

	orders := api.Group("/orders")
	orders.POST("", cfg.Orders.Create)
	orders.GET("", cfg.Orders.List)
	orders.GET("/:id", cfg.Orders.Get)
	orders.PATCH("/:id/status", cfg.Orders.UpdateStatus)
	orders.DELETE("/:id", cfg.Orders.Cancel)
	orders.GET("/customer/:customerId", cfg.Orders.ListByCustomer)

	payments := api.Group("/payments")
	payments.POST("/create", cfg.Payments.CreateCheckout)
	payments.GET("", cfg.Payments.List)
	payments.GET("/success", cfg.Payments.Success)
	payments.GET("/failure", cfg.Payments.Failure)
	payments.GET("/pending", cfg.Payments.Pending)
	payments.GET("/order/:orderId", cfg.Payments.ListByOrder)
	payments.GET("/:id", cfg.Payments.Get)

	emails := api.Group("/email")
	emails.POST("/payment-confirmation", cfg.Emails.SendConfirmation)
	emails.POST("/payment-failed", cfg.Emails.SendFailed)
	emails.POST("/welcome", cfg.Emails.SendWelcome)

	api.POST("/webhooks/mercadopago", cfg.Webhooks.MercadoPago)

	return r
}

func healthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "payment-automation"})
	}
}
