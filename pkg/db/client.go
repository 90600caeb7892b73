package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	Client *dynamodb.Client
	once   sync.Once
)

// NewDynamoDBClient initializes the shared DynamoDB client. Safe to call
// more than once; only the first call connects.
func NewDynamoDBClient(ctx context.Context) error {
	var initErr error

	once.Do(func() {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			initErr = fmt.Errorf("unable to load SDK config: %w", err)
			return
		}

		Client = dynamodb.NewFromConfig(cfg)
	})

	return initErr
}
