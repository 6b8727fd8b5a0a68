package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a required setting or credential is missing or malformed.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LLM - provider selection, OpenAI (default) or Gemini
	LLM    LLMConfig
	OpenAI OpenAIConfig
	Gemini GeminiConfig

	// Store - preference documents (Redis)
	Store StoreConfig

	// PostgreSQL - chat transcript, message reports (optional)
	Postgres PostgresConfig

	// Kafka - domain events (optional)
	Kafka KafkaConfig

	// MinIO - extracted blob upload (optional)
	MinIO MinIOConfig

	// Extract - PDF extraction utility
	Extract ExtractConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig selects the completion provider.
type LLMConfig struct {
	Provider string
	Model    string
	Timeout  time.Duration
}

// OpenAIConfig is the configuration for OpenAI chat completions.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
}

// GeminiConfig is the configuration for Google Gemini.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
}

// StoreConfig points at the credential document of the preference store.
type StoreConfig struct {
	CredentialsPath string
	Timeout         time.Duration
	Credentials     StoreCredentials
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// ExtractConfig is the configuration for the PDF extraction utility.
type ExtractConfig struct {
	PDFDir       string
	OutputFile   string
	Upload       bool
	ObjectPrefix string
}

// Load loads the API service configuration using Viper.
// The LLM API key and the store credential document are required.
func Load() (*Config, error) {
	cfg, err := read(nil)
	if err != nil {
		return nil, err
	}

	creds, err := LoadStoreCredentials(cfg.Store.CredentialsPath)
	if err != nil {
		return nil, err
	}
	cfg.Store.Credentials = creds

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadExtract loads the extraction utility configuration. Flags in fs override
// file and environment values.
func LoadExtract(fs *pflag.FlagSet) (*Config, error) {
	cfg, err := read(fs)
	if err != nil {
		return nil, err
	}
	if err := validateExtract(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExtractFlags defines the command line flags of the extraction utility.
func ExtractFlags(fs *pflag.FlagSet) {
	fs.String("pdf-dir", "", "folder containing the PDF files")
	fs.String("output", "", "path of the JSON file to write")
	fs.Bool("upload", false, "upload the JSON file to MinIO")
	fs.String("object-prefix", "", "object key prefix used for the upload")
}

var extractFlagKeys = map[string]string{
	"pdf-dir":       "extract.pdf_dir",
	"output":        "extract.output_file",
	"upload":        "extract.upload",
	"object-prefix": "extract.object_prefix",
}

func read(fs *pflag.FlagSet) (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("sommelier-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/sommelier/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	if fs != nil {
		for flag, key := range extractFlagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := viper.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("%w: error reading config file: %v", ErrInvalidConfig, err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LLM
	cfg.LLM.Provider = strings.ToLower(viper.GetString("llm.provider"))
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.BaseURL = viper.GetString("gemini.base_url")

	// Store
	cfg.Store.CredentialsPath = viper.GetString("store.credentials_path")
	cfg.Store.Timeout = viper.GetDuration("store.timeout")

	// PostgreSQL
	cfg.Postgres.Enabled = viper.GetBool("postgres.enabled")
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Kafka
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Extract
	cfg.Extract.PDFDir = viper.GetString("extract.pdf_dir")
	cfg.Extract.OutputFile = viper.GetString("extract.output_file")
	cfg.Extract.Upload = viper.GetBool("extract.upload")
	cfg.Extract.ObjectPrefix = viper.GetString("extract.object_prefix")

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// 1. LLM
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4")
	viper.SetDefault("llm.timeout", "60s")

	// 2. Store
	viper.SetDefault("store.credentials_path", "/etc/secrets/store-credentials.json")
	viper.SetDefault("store.timeout", "5s")

	// 3. PostgreSQL (schema: sommelier)
	viper.SetDefault("postgres.enabled", false)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "sommelier")

	// 4. Kafka (topic: sommelier.events)
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "sommelier.events")

	// 5. MinIO (bucket: sommelier-data)
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "sommelier-data")

	// 6. Extract
	viper.SetDefault("extract.pdf_dir", "./data/pdfs")
	viper.SetDefault("extract.output_file", "./data/extracted_data.json")
	viper.SetDefault("extract.upload", false)
	viper.SetDefault("extract.object_prefix", "extracted/")
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return invalid("http_server.port must be between 1 and 65535")
	}

	// Validate LLM
	switch cfg.LLM.Provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return invalid("OPENAI_API_KEY is required")
		}
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return invalid("GEMINI_API_KEY is required")
		}
	default:
		return invalid("llm.provider must be 'openai' or 'gemini', got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Timeout <= 0 {
		return invalid("llm.timeout must be greater than 0")
	}

	// Validate Store
	if cfg.Store.Timeout <= 0 {
		return invalid("store.timeout must be greater than 0")
	}
	if cfg.Store.Credentials.Addr == "" {
		return invalid("store credentials: addr is required")
	}

	// Validate optional backends only when enabled
	if cfg.Postgres.Enabled {
		if cfg.Postgres.Host == "" {
			return invalid("postgres.host is required")
		}
		if cfg.Postgres.Port == 0 {
			return invalid("postgres.port is required")
		}
		if cfg.Postgres.DBName == "" {
			return invalid("postgres.dbname is required")
		}
		if cfg.Postgres.User == "" {
			return invalid("postgres.user is required")
		}
	}
	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return invalid("kafka.brokers must have at least one value")
		}
		if cfg.Kafka.Topic == "" {
			return invalid("kafka.topic is required")
		}
	}

	return nil
}

func validateExtract(cfg *Config) error {
	if cfg.Extract.PDFDir == "" {
		return invalid("extract.pdf_dir is required")
	}
	if cfg.Extract.OutputFile == "" {
		return invalid("extract.output_file is required")
	}
	if cfg.Extract.Upload {
		if cfg.MinIO.Endpoint == "" {
			return invalid("minio.endpoint is required")
		}
		if cfg.MinIO.AccessKey == "" {
			return invalid("minio.access_key is required")
		}
		if cfg.MinIO.SecretKey == "" {
			return invalid("minio.secret_key is required")
		}
		if cfg.MinIO.Bucket == "" {
			return invalid("minio.bucket is required")
		}
	}
	return nil
}
