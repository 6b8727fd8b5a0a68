package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"sommelier-srv/internal/event"
	"sommelier-srv/internal/history"
	"sommelier-srv/internal/llm"
	"sommelier-srv/internal/preference"
	"sommelier-srv/pkg/log"
	pkgRedis "sommelier-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Preference Store Configuration
	redisClient  pkgRedis.IRedis
	storeTimeout time.Duration

	// Database Configuration (optional)
	postgresDB     *sql.DB
	postgresSchema string

	// LLM & Events Configuration
	llm       llm.Completer
	publisher event.Publisher

	// Domain usecases shared between domains
	preferenceUC preference.UseCase
	historyUC    history.UseCase
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Preference Store Configuration
	RedisClient  pkgRedis.IRedis
	StoreTimeout time.Duration

	// Database Configuration (nil disables the transcript)
	PostgresDB     *sql.DB
	PostgresSchema string

	// LLM & Events Configuration
	LLM       llm.Completer
	Publisher event.Publisher
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = event.NewNopPublisher()
	}

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Preference Store Configuration
		redisClient:  cfg.RedisClient,
		storeTimeout: cfg.StoreTimeout,

		// Database Configuration
		postgresDB:     cfg.PostgresDB,
		postgresSchema: cfg.PostgresSchema,

		// LLM & Events Configuration
		llm:       cfg.LLM,
		publisher: publisher,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.llm == nil {
		return errors.New("llm is required")
	}

	// postgresDB is optional: without it chat history is disabled
	return nil
}
