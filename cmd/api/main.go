package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hauraqrrta/smartmosspanel-app/docs"
	"github.com/hauraqrrta/smartmosspanel-app/internal/api"
	"github.com/hauraqrrta/smartmosspanel-app/internal/auth"
	"github.com/hauraqrrta/smartmosspanel-app/internal/control"
	"github.com/hauraqrrta/smartmosspanel-app/internal/session"
	"github.com/hauraqrrta/smartmosspanel-app/internal/telemetry"
	"github.com/hauraqrrta/smartmosspanel-app/pkg/db"
	"github.com/hauraqrrta/smartmosspanel-app/pkg/logger"
)

// @title Smart Moss Panel API
// @version 1.0
// @description Backend for panel telemetry ingestion, dashboard queries, and pump/fan control.

// @host localhost:8080
func main() {
	log := logger.InitLogger()
	log.Info("Smart Moss Panel API: starting")

	// .env is a local-dev convenience; deployed environments set real env vars.
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file loaded", "error", err)
	}

	if err := db.NewDynamoDBClient(context.Background()); err != nil {
		log.Error("failed to initialize DynamoDB", "error", err)
		os.Exit(1)
	}

	telemetryStore, err := telemetry.NewTelemetryStore()
	if err != nil {
		log.Error("failed to init telemetry store", "error", err)
		os.Exit(1)
	}

	stateStore, err := control.NewStateStore()
	if err != nil {
		log.Error("failed to init control state store", "error", err)
		os.Exit(1)
	}

	tokenStore, err := auth.NewTokenStore(log)
	if err != nil {
		log.Error("failed to init token store", "error", err)
		os.Exit(1)
	}

	router := gin.Default()
	router.Use(api.CORS())
	router.Use(session.Gate())

	handler := api.NewHandler(log, telemetryStore, stateStore, tokenStore)
	api.RegisterRoutes(router, handler)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("listening", "port", port)
	if err := router.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
