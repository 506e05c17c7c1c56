package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/handler"
	"github.com/johncrouse123/cloud-portfolio/internal/repository"
	"github.com/johncrouse123/cloud-portfolio/internal/secrets"
	"github.com/johncrouse123/cloud-portfolio/internal/service"
	"github.com/johncrouse123/cloud-portfolio/pkg/config"
	"github.com/johncrouse123/cloud-portfolio/pkg/middleware"
)

// Local development server. Every request is adapted into the same
// proxy envelope the Lambda receives, so the routing and handler
// behavior match the deployed function exactly.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	dynamoClient, err := repository.NewDynamoDBClient(cfg)
	if err != nil {
		log.Fatal("Failed to create DynamoDB client:", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		log.Fatal("Failed to load AWS config:", err)
	}

	secretCache := secrets.NewCache(secrets.NewSSMProvider(ssm.NewFromConfig(awsCfg)))
	connector := repository.NewMySQLConnector(cfg, secretCache, logger)

	catalogRepo := repository.NewCatalogRepository(dynamoClient, cfg.DynamoTable)
	orderRepo := repository.NewOrderRepository(connector, logger)

	catalogService := service.NewCatalogService(catalogRepo, logger)
	checkoutService := service.NewCheckoutService(orderRepo, logger)

	h := handler.New(catalogService, checkoutService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	// No gin routes: everything funnels through the envelope router so
	// the prefix-match dispatch stays byte-for-byte the Lambda's.
	router.NoRoute(h.ServeGin)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
