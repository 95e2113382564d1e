package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidmro/escolar-api/internal/application/service"
	"github.com/davidmro/escolar-api/internal/config"
	"github.com/davidmro/escolar-api/internal/infrastructure/database"
	"github.com/davidmro/escolar-api/internal/infrastructure/repository"
	"github.com/davidmro/escolar-api/internal/presentation/http/handler"
	"github.com/davidmro/escolar-api/internal/presentation/http/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}()

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	studentRepo := repository.NewStudentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	sequencer := service.NewReceiptSequencer(paymentRepo, cfg.Receipt.MonthlyReset)
	studentService := service.NewStudentService(studentRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo)
	paymentService := service.NewPaymentService(paymentRepo, studentRepo, sequencer, cfg.Payment.Methods)
	inventoryService := service.NewInventoryService(inventoryRepo, cfg.Inventory.LowStockThreshold)
	dashboardService := service.NewDashboardService(studentRepo, attendanceRepo, paymentRepo, inventoryRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Payment:    handler.NewPaymentHandler(paymentService),
		Student:    handler.NewStudentHandler(studentService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Inventory:  handler.NewInventoryHandler(inventoryService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	stop()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
