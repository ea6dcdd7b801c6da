package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"store-api/controllers"
	"store-api/middleware"
	"store-api/repository"
	"store-api/routes"
	"store-api/services"
)

func main() {
	cfg := LoadConfig()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- HTTP router ---
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RequestTimeout(30 * time.Second))
	r.NoRoute(middleware.NotFound())

	// --- Dependency injection ---
	userRepo := repository.NewMemoryUserRepository()
	productRepo := repository.NewMemoryProductRepository()
	orderRepo := repository.NewMemoryOrderRepository()

	userService := services.NewUserService(userRepo, logger)
	productService := services.NewProductService(productRepo, logger)
	orderService := services.NewOrderService(orderRepo, userRepo, productRepo, logger)

	healthController := controllers.NewHealthController()
	userController := controllers.NewUserController(userService)
	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController(orderService)

	routes.Register(r, healthController, userController, productController, orderController)

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Store API started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	log.Println("Store API stopped gracefully")
}
