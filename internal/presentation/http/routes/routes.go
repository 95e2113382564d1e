package routes

import (
	"time"

	"github.com/davidmro/escolar-api/internal/config"
	domainRepo "github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/internal/presentation/http/handler"
	"github.com/davidmro/escolar-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Payment    *handler.PaymentHandler
	Student    *handler.StudentHandler
	Attendance *handler.AttendanceHandler
	Inventory  *handler.InventoryHandler
	Dashboard  *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerPaymentRoutes(v1, h, deps)
		registerStudentRoutes(v1, h)
		registerAttendanceRoutes(v1, h)
		registerInventoryRoutes(v1, h)

		v1.GET("/dashboard", h.Dashboard.Stats)
	}

	return router
}

func registerPaymentRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	payments := v1.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.GET("/summary", h.Payment.Summary)
		payments.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Payment.Create)
		payments.GET("/:id", h.Payment.Get)
		payments.PUT("/:id", h.Payment.Update)
		payments.DELETE("/:id", h.Payment.Delete)
	}
}

func registerStudentRoutes(v1 *gin.RouterGroup, h *Handlers) {
	students := v1.Group("/students")
	{
		students.GET("", h.Student.List)
		students.POST("", h.Student.Create)
		students.GET("/:id", h.Student.Get)
		students.PUT("/:id", h.Student.Update)
		students.DELETE("/:id", h.Student.Delete)
	}
}

func registerAttendanceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	attendance := v1.Group("/attendance")
	{
		attendance.GET("", h.Attendance.List)
		attendance.POST("", h.Attendance.Create)
		attendance.GET("/:id", h.Attendance.Get)
		attendance.PUT("/:id", h.Attendance.Update)
		attendance.DELETE("/:id", h.Attendance.Delete)
	}
}

func registerInventoryRoutes(v1 *gin.RouterGroup, h *Handlers) {
	inventory := v1.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.GET("/low-stock", h.Inventory.LowStock)
		inventory.GET("/stats", h.Inventory.Stats)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}
}
