package main

import (
	"alcyxob/health-tracker/internal/ai"
	"alcyxob/health-tracker/internal/api"
	"alcyxob/health-tracker/internal/config"
	"alcyxob/health-tracker/internal/otp"
	mongorepo "alcyxob/health-tracker/internal/repository/mongo"
	redisrepo "alcyxob/health-tracker/internal/repository/redis"
	"alcyxob/health-tracker/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Println("Starting Health Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongorepo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongorepo.EnsureDailyLogIndexes(ctx, appDB.Collection("daily_logs"))
		log.Println("Index creation process completed.")
	}()

	// --- Redis Connection (sessions + pending OTP codes) ---
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("FATAL: Could not connect to Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("ERROR: Failed to close Redis client: %v", err)
		}
	}()
	log.Println("Redis connection established.")

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	profileRepo := mongorepo.NewMongoProfileRepository(appDB)
	recordRepo := mongorepo.NewMongoDailyRecordRepository(appDB)
	sessionRepo := redisrepo.NewSessionRepository(redisClient)
	codeRepo := redisrepo.NewVerificationCodeRepository(redisClient)

	// --- Initialize OTP Sender ---
	var sender otp.Sender
	if cfg.OTP.DevMode {
		log.Println("WARN: OTP dev mode enabled, codes are logged instead of sent")
		sender = otp.NewDevSender(codeRepo, cfg.OTP.CodeTTL)
	} else {
		sender = otp.NewMessageCentralSender(cfg.OTP)
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	gate := service.NewSessionGate(sessionRepo, profileRepo)
	authService := service.NewAuthService(sender, sessionRepo, gate, cfg.JWT.Secret, cfg.JWT.Expiration)
	trackerService := service.NewTrackerService(profileRepo, recordRepo, gate)
	assistant := ai.NewAssistant(cfg.AI)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, gate, authService, trackerService, assistant)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
