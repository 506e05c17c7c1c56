package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/handler"
	"github.com/johncrouse123/cloud-portfolio/internal/repository"
	"github.com/johncrouse123/cloud-portfolio/internal/secrets"
	"github.com/johncrouse123/cloud-portfolio/internal/service"
	"github.com/johncrouse123/cloud-portfolio/pkg/config"
)

func main() {
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

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return h.Route(ctx, req), nil
	})
}
