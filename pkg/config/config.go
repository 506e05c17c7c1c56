package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port             string `envconfig:"PORT" default:"8080"`
	AWSRegion        string `envconfig:"AWS_REGION" default:"us-east-1"`
	RDSHost          string `envconfig:"RDS_HOST"`
	RDSDatabase      string `envconfig:"RDS_DATABASE"`
	DynamoTable      string `envconfig:"DYNAMO_TABLE" default:"products"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:""` // DynamoDB Local endpoint
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`

	// SSM parameter names for the RDS credentials (SecureString).
	DBUsernameParam string `envconfig:"DB_USERNAME_PARAM" default:"/ubuntucrafts/db_username"`
	DBPasswordParam string `envconfig:"DB_PASSWORD_PARAM" default:"/ubuntucrafts/db_password"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
