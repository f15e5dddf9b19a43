// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"baerstudio/internal/bookings"
	"baerstudio/internal/contacts"
	"baerstudio/internal/notifications"
	"baerstudio/internal/payments"
	"baerstudio/internal/shared/config"
	"baerstudio/internal/shared/store"
	"baerstudio/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	store     store.Store
	processor payments.Processor
	notifier  notifications.Publisher
	log       *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, st store.Store, processor payments.Processor, notifier notifications.Publisher, log *logger.Logger) *Router {
	return &Router{
		config:    cfg,
		store:     st,
		processor: processor,
		notifier:  notifier,
		log:       log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	bookings.RegisterValidators()

	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupBookingRoutes(api)
		r.setupContactRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"timestamp": time.Now().UTC(),
				"services":  []string{},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"services":  []string{"contact", "bookings"},
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupBookingRoutes configures availability, booking and payment routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	repo := bookings.NewRepository(r.store)
	locker := bookings.NewSlotLocker(r.store.Client())
	service := bookings.NewService(repo, locker, r.processor, r.notifier, r.log)
	controller := bookings.NewController(service)

	bookings.SetupBookingRoutes(rg, controller)
}

// setupContactRoutes configures contact-form routes
func (r *Router) setupContactRoutes(rg *gin.RouterGroup) {
	repo := contacts.NewRepository(r.store)
	service := contacts.NewService(repo, r.notifier, r.log)
	controller := contacts.NewController(service)

	contacts.SetupContactRoutes(rg, controller)
}
