package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/hauraqrrta/smartmosspanel-app/internal/ingestion"
	"github.com/hauraqrrta/smartmosspanel-app/internal/telemetry"
	"github.com/hauraqrrta/smartmosspanel-app/pkg/db"
	"github.com/hauraqrrta/smartmosspanel-app/pkg/logger"
)

var (
	log            *slog.Logger
	telemetryStore *telemetry.TelemetryStore
)

func init() {
	log = logger.InitLogger()
	log.Info("IoT Ingestion: Cold Start")

	if err := db.NewDynamoDBClient(context.Background()); err != nil {
		log.Error("Failed to initialize DynamoDB", "error", err)
		panic(err)
	}

	var err error

	telemetryStore, err = telemetry.NewTelemetryStore()
	if err != nil {
		panic(fmt.Errorf("failed to init telemetry store: %w", err))
	}
}

func main() {
	service := &ingestion.Service{
		Logger:         log,
		TelemetryStore: telemetryStore,
	}

	lambda.Start(service.HandleRequest)
}
