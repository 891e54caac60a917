package main

import (
	"context"
	"log"
	"os"

	"github.com/Da-0ldSaint/Asm/cmd"
	"github.com/Da-0ldSaint/Asm/internal/core/container"
	"github.com/Da-0ldSaint/Asm/internal/core/logger"
	"github.com/Da-0ldSaint/Asm/internal/core/routes"
	"github.com/Da-0ldSaint/Asm/internal/database"
	"github.com/Da-0ldSaint/Asm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	appLogger := logger.NewLogger()
	defer appLogger.Sync()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		appLogger.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		appLogger.Fatal("could not connect to the database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Connected to the database successfully")

	ctx := context.Background()
	appContainer, err := container.NewAppContainer(ctx, db, os.Getenv("UPLOAD_DIR"), appLogger)
	if err != nil {
		appLogger.Fatal("could not build application container", zap.Error(err))
	}

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(appLogger))
	router.Use(routes.CORSMiddleware())

	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router, appContainer)

	host := os.Getenv("APP_HOST")
	if host == "" {
		host = ":5000"
	}

	appLogger.Info("Starting server", zap.String("host", host))
	if err := router.Run(host); err != nil {
		appLogger.Fatal("server stopped", zap.Error(err))
	}
}
