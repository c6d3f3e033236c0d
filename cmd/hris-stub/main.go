package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-hris-cli/internal/bootstrap"
	"go-hris-cli/internal/hristest"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := hristest.NewStore()
	if os.Getenv("HRIS_STUB_SEED") != "false" {
		if err := hristest.Seed(store); err != nil {
			zap.L().Fatal("Seed failed", zap.Error(err))
		}
	}

	server := hristest.NewServer(store, logger)

	port := os.Getenv("HRIS_STUB_PORT")
	if port == "" {
		port = "8080"
	}

	bootstrap.StartHTTPServer(server.Router(), bootstrap.ServerConfig{
		Port:         port,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
}
