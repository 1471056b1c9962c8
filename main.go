package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shujia/config"
	"shujia/handlers"
	"shujia/middleware"
	"shujia/routes"
	"shujia/services/bookingflow"
	"shujia/services/marketplace"
	"shujia/services/session"
	"shujia/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Collaborators.
	store := session.NewRedisStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
		logger,
	)
	client := marketplace.NewHTTPClient(
		config.AppConfig.MarketplaceAPIURL,
		time.Duration(config.AppConfig.MarketplaceAPITimeout)*time.Second,
		logger,
	)
	validator := bookingflow.NewValidator()

	bookingController := bookingflow.NewBookingController(store, validator, logger)
	paymentController := bookingflow.NewPaymentController(store, client, validator, logger)

	flowHandler := handlers.NewFlowHandler(store, bookingController, paymentController, logger)
	routes.SetupRoutes(router, flowHandler)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Block until we receive a termination signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	logger.Info("main: server stopped")
}
