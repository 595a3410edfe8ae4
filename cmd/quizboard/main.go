package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gagquiz/quizboard/internal/api"
	"github.com/gagquiz/quizboard/internal/auth"
	"github.com/gagquiz/quizboard/internal/config"
	"github.com/gagquiz/quizboard/internal/database"
	"github.com/gagquiz/quizboard/internal/pubsub"
	"github.com/gagquiz/quizboard/internal/quiz"

	"go.uber.org/zap"
)

var Version = "dev-build"

func main() {

	fmt.Fprintf(os.Stderr, "GAG Quiz %s - Quiz Scoring and Leaderboard Service\n\n", Version)

	// config
	var configPath string
	var hashPassword string
	flag.StringVar(&configPath, "c", "configs/config.yaml", "path to config file")
	flag.StringVar(&hashPassword, "hash-password", "", "print a bcrypt hash for the given admin password and exit")
	flag.Parse()

	if hashPassword != "" {
		hash, err := auth.HashSecret(hashPassword)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// logger
	var logger *zap.Logger
	if cfg.Logger.Level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// database
	db, err := database.Init(cfg.Storage.Database)
	if err != nil {
		zap.S().Fatalf("failed to initialize database: %v", err)
	}
	zap.S().Info("database initialized successfully")

	// engines and broker
	store := database.NewStore(db)
	scoring := quiz.NewScoring(store)
	ranking := quiz.NewRanking(store)
	broker := pubsub.NewBroker()

	// API router
	engine := api.NewRouter(cfg, scoring, ranking, broker)

	// start server
	go func() {
		zap.S().Infof("starting server at %s", cfg.Listen)
		if err := engine.Run(cfg.Listen); err != nil {
			zap.S().Fatalf("failed to start server: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("shutting down server...")
}
