package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ordo-labs/order-api/internal/adapters/config"
	"github.com/ordo-labs/order-api/internal/adapters/http/controllers"
	"github.com/ordo-labs/order-api/internal/adapters/http/middleware"
)

type Router struct {
	healthController   *controllers.HealthController
	orderController    *controllers.OrderController
	productController  *controllers.ProductController
	customerController *controllers.CustomerController
	auditController    *controllers.AuditController
	rateLimiter        middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	orderController *controllers.OrderController,
	productController *controllers.ProductController,
	customerController *controllers.CustomerController,
	auditController *controllers.AuditController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		orderController:    orderController,
		productController:  productController,
		customerController: customerController,
		auditController:    auditController,
		rateLimiter:        rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.Use(middleware.Actor())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/customers", r.customerController.Create)
		v1Group.GET("/customers", r.customerController.List)
		v1Group.GET("/customers/:id", r.customerController.GetByID)
		v1Group.PUT("/customers/:id", r.customerController.Update)
		v1Group.DELETE("/customers/:id", r.customerController.Delete)

		v1Group.POST("/products", r.productController.Create)
		v1Group.GET("/products", r.productController.List)
		v1Group.GET("/products/:id", r.productController.GetByID)
		v1Group.PUT("/products/:id", r.productController.Update)
		v1Group.DELETE("/products/:id", r.productController.Delete)

		v1Group.POST("/orders", middleware.RateLimit(rl, 15, 1*time.Minute), r.orderController.Create)
		v1Group.GET("/orders", r.orderController.List)
		v1Group.GET("/orders/:id", r.orderController.GetByID)
		v1Group.DELETE("/orders/:id", middleware.RateLimit(rl, 20, 1*time.Minute), r.orderController.Delete)
		v1Group.POST("/orders/:id/items", middleware.RateLimit(rl, 20, 1*time.Minute), r.orderController.AddItem)
		v1Group.PUT("/orders/:id/items", middleware.RateLimit(rl, 20, 1*time.Minute), r.orderController.UpdateItem)
		v1Group.DELETE("/orders/:id/items/:productId", middleware.RateLimit(rl, 20, 1*time.Minute), r.orderController.RemoveItem)

		v1Group.GET("/audit-logs/:entityId", r.auditController.ListByEntity)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
