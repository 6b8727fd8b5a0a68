package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"sommelier-srv/config"
	configKafka "sommelier-srv/config/kafka"
	configPostgre "sommelier-srv/config/postgre"
	configRedis "sommelier-srv/config/redis"
	_ "sommelier-srv/docs" // Import swagger docs
	"sommelier-srv/internal/event"
	"sommelier-srv/internal/httpserver"
	"sommelier-srv/internal/llm"
	"sommelier-srv/pkg/log"
)

// @title       SipNSavor Sommelier API
// @description Sommelier chatbot: routes user messages through preference updates, canned replies and an LLM.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file, environment variables and the store credential document.
	// Missing or malformed credentials stop the process here.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error(context.Background(), "Server exited with error: ", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger log.Logger) error {
	ctx := context.Background()

	// 3. Initialize preference store (Redis)
	redisClient, err := configRedis.Connect(ctx, cfg.Store.Credentials)
	if err != nil {
		return fmt.Errorf("connect preference store: %w", err)
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Preference store connected to %s (DB %d)", cfg.Store.Credentials.Addr, cfg.Store.Credentials.DB)

	// 4. Initialize LLM client
	completer, err := llm.New(llm.Config{
		Provider:      cfg.LLM.Provider,
		Model:         cfg.LLM.Model,
		Timeout:       cfg.LLM.Timeout,
		OpenAIAPIKey:  cfg.OpenAI.APIKey,
		OpenAIBaseURL: cfg.OpenAI.BaseURL,
		GeminiAPIKey:  cfg.Gemini.APIKey,
		GeminiBaseURL: cfg.Gemini.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("initialize llm: %w", err)
	}
	logger.Infof(ctx, "LLM provider %s initialized with model %s", cfg.LLM.Provider, cfg.LLM.Model)

	// 5. Initialize PostgreSQL (optional)
	var postgresDB *sql.DB
	if cfg.Postgres.Enabled {
		postgresDB, err = configPostgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer configPostgre.Disconnect(ctx, postgresDB)
		logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	}

	// 6. Initialize Kafka producer (optional)
	publisher := event.NewNopPublisher()
	if cfg.Kafka.Enabled {
		producer, err := configKafka.Connect(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("connect kafka: %w", err)
		}
		defer configKafka.Disconnect()
		publisher = event.NewKafkaPublisher(producer, logger)
		logger.Infof(ctx, "Kafka producer connected, publishing to %s", cfg.Kafka.Topic)
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Preference Store Configuration
		RedisClient:  redisClient,
		StoreTimeout: cfg.Store.Timeout,

		// Database Configuration
		PostgresDB:     postgresDB,
		PostgresSchema: cfg.Postgres.Schema,

		// LLM & Events Configuration
		LLM:       completer,
		Publisher: publisher,
	})
	if err != nil {
		return fmt.Errorf("initialize http server: %w", err)
	}

	return httpServer.Run()
}
