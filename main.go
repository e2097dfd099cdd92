package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/controllers"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/logger"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/middleware"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/repository"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/routes"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	zapLog, err := logger.Initialize(cfg.Env)
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer zapLog.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
		if cfg.JWTSecret == defaultJWTSecret {
			zapLog.Warn("JWT_SECRET is the development default; set a real secret in production")
		}
	}

	// Repositories own all state for the lifetime of the process. Nothing is
	// persisted; a restart starts from the seed data.
	userRepo := repository.NewUserRepository()
	orderRepo := repository.NewOrderRepository()
	reviewRepo := repository.NewReviewRepository()
	productRepo := repository.NewProductRepository(repository.SeedProducts())

	if err := seedAdmin(userRepo, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		zapLog.Fatal("Could not seed admin account", zap.Error(err))
	}

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, zapLog)
	reviewService := services.NewReviewService(reviewRepo, productRepo, orderService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zapLog))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute, cfg.RateLimitBurst))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Products: controllers.NewProductController(productService),
		Orders:   controllers.NewOrderController(orderService),
		Reviews:  controllers.NewReviewController(reviewService),
		Tokens:   tokenService,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zapLog.Info("Server started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("Forced shutdown", zap.Error(err))
	}
}

// seedAdmin creates the single designated admin account.
func seedAdmin(userRepo *repository.UserRepository, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return userRepo.Create(models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
}
