package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/middleware"
	"hostel-backend/routes"
	"hostel-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	tokenService := services.NewTokenService(cfg)
	adminService := services.NewAdminService(db)
	roomService := services.NewRoomService(db)
	hostelerService := services.NewHostelerService(db)
	exportService := services.NewExportService(hostelerService)

	// Initialize controllers
	authController := controllers.NewAuthController(adminService, tokenService, cfg)
	adminController := controllers.NewAdminController(adminService, exportService)
	roomController := controllers.NewRoomController(roomService)
	hostelerController := controllers.NewHostelerController(hostelerService)

	// Build router
	verifyJWT := middleware.VerifyJWT(tokenService, adminService)
	router := routes.SetupRouter(cfg, authController, adminController, roomController, hostelerController, verifyJWT)

	addr := ":" + cfg.ServerPort

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
