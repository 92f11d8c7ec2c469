package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/auth"
	"github.com/parmaworld/parmaworld-api/config"
	"github.com/parmaworld/parmaworld-api/controllers"
	"github.com/parmaworld/parmaworld-api/database"
	"github.com/parmaworld/parmaworld-api/middlewares"
	"github.com/parmaworld/parmaworld-api/models"
	"github.com/parmaworld/parmaworld-api/payments"
	"github.com/parmaworld/parmaworld-api/routes"
	"github.com/parmaworld/parmaworld-api/utils"
	"go.uber.org/zap"
)

const (
	tokenTTL        = time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	db, err := database.Connect(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, tokenTTL)
	intents := payments.NewService(cfg.StripeSecretKey, logger)

	var uploader *utils.Uploader
	if cfg.S3Bucket != "" {
		uploader, err = utils.NewUploader(context.Background(), cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			logger.Warn("image uploads disabled", zap.Error(err))
		}
	}

	users := db.Users()
	mw := routes.Middleware{
		Auth:   middlewares.RequireAuth(tokens),
		Admin:  middlewares.RequireRole(users, models.RoleAdmin, logger),
		Seller: middlewares.RequireRole(users, models.RoleSeller, logger),
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(tokens, logger))
	routes.UserRoutes(server, controllers.NewUserController(users, logger), mw)
	routes.MedicineRoutes(server, controllers.NewMedicineController(db.Medicines(), uploader, logger), mw)
	routes.CategoryRoutes(server, controllers.NewCategoryController(db.Categories(), logger), mw)
	routes.CartRoutes(server, controllers.NewCartController(db.Cart(), logger), mw)
	routes.AdvertisementRoutes(server, controllers.NewAdvertisementController(db.Advertisements(), logger), mw)
	routes.OrderRoutes(server, controllers.NewOrderController(db.Orders(), db.Medicines(), logger), mw)
	routes.PaymentRoutes(server, controllers.NewPaymentController(intents, logger))

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server,
	}

	go func() {
		logger.Info("Medicine Selling Server is running", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if err := db.Close(ctx); err != nil {
		logger.Error("error closing database", zap.Error(err))
	}
}
