package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kartikmaddali/aura-commerce-demo/controllers"
	"github.com/kartikmaddali/aura-commerce-demo/logger"
	"github.com/kartikmaddali/aura-commerce-demo/middleware"
	"github.com/kartikmaddali/aura-commerce-demo/repository"
	"github.com/kartikmaddali/aura-commerce-demo/routes"
	"github.com/kartikmaddali/aura-commerce-demo/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.Initialize(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Dependency injection ---

	productRepo := repository.NewMemoryProductRepository(repository.SeedProducts())

	tokenService := services.NewTokenService(cfg.JWTSecret, log)
	permissionService := services.NewPermissionService()
	productService := services.NewProductService(productRepo, log)
	orderService := services.NewOrderService(log)
	userService := services.NewUserService(log)
	aiService := services.NewAIService(permissionService, log)

	ctrl := routes.Controllers{
		Auth:     controllers.NewAuthController(permissionService, log),
		Products: controllers.NewProductController(productService, log),
		Orders:   controllers.NewOrderController(orderService, log),
		Users:    controllers.NewUserController(userService, log),
		AI:       controllers.NewAIController(aiService, log),
	}

	// --- HTTP server and middleware ---

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit())

	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(r, tokenService, ctrl)

	// --- Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Aura Commerce API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
