//go:build !lambda
// +build !lambda

package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/metatx/transactions-api/internal/helpers"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Variables may be set directly in the environment.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	logger.InitLogger(stage)
	defer func() { _ = logger.Sync() }()

	r := gin.Default()
	server.InitializeHandlers()
	defer server.Shutdown()
	server.InitializeRoutes(r)

	logger.Info("Server starting", zap.String("addr", server.Address()))
	if err := r.Run(server.Address()); err != nil {
		logger.Error("Error starting server", zap.Error(err))
	}
}
