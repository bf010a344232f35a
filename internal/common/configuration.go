// Package common provides configuration management, identifier encoding,
// and HTTP endpoint utilities shared by the BaSyx Go framework services.
// It includes support for YAML configuration files, environment variable
// overrides, CORS setup and health endpoints.
// nolint:all
package common

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

// PrintSplash displays the BaSyx Go API ASCII art logo to the console.
// This function is typically called during application startup to provide
// visual branding and confirm the service is starting.
func PrintSplash() {
	log.Printf(`
	██████╗  █████╗ ███████╗██╗   ██╗██╗  ██╗     ██████╗  ██████╗
	██╔══██╗██╔══██╗██╔════╝╚██╗ ██╔╝╚██╗██╔╝    ██╔════╝ ██╔═══██╗
	██████╔╝███████║███████╗ ╚████╔╝  ╚███╔╝     ██║  ███╗██║   ██║
	██╔══██╗██╔══██║╚════██║  ╚██╔╝   ██╔██╗     ██║   ██║██║   ██║
	██████╔╝██║  ██║███████║   ██║   ██╔╝ ██╗    ╚██████╔╝╚██████╔╝
	╚═════╝ ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝     ╚═════╝  ╚═════╝

	█████╗ ██████╗ ██╗
	██╔══██╗██╔══██╗██║
	███████║██████╔╝██║
	██╔══██║██╔═══╝ ██║
	██║  ██║██║     ██║
	╚═╝  ╚═╝╚═╝     ╚═╝
	`)
}

// Config represents the complete configuration structure for the framework
// services. It combines server settings, the persistence backend selection,
// attachment storage and the CORS policy.
type Config struct {
	Server      ServerConfig      `yaml:"server"`      // HTTP server configuration
	Backend     BackendConfig     `yaml:"backend"`     // Persistence backend selection
	Postgres    PostgresConfig    `yaml:"postgres"`    // PostgreSQL database settings
	Mongo       MongoConfig       `yaml:"mongo"`       // MongoDB settings
	S3          S3Config          `yaml:"s3"`          // S3 object storage settings
	Attachments AttachmentsConfig `yaml:"attachments"` // Attachment storage selection
	CorsConfig  CorsConfig        `yaml:"cors"`        // CORS policy configuration
	Swagger     SwaggerConfig     `yaml:"swagger"`     // Swagger UI contact information
}

// ServerConfig contains HTTP server configuration parameters.
type ServerConfig struct {
	Host               string `yaml:"host"`               // Bind address (default: 0.0.0.0)
	Port               int    `yaml:"port"`               // HTTP server port (default: 5004)
	ContextPath        string `yaml:"contextPath"`        // Base path for all endpoints
	StrictVerification bool   `yaml:"strictVerification"` // Reject payloads violating metamodel constraints
}

// BackendConfig selects the persistence backend for identifiable objects.
// Supported types are "memory", "postgres" and "mongo".
type BackendConfig struct {
	Type string `yaml:"type"`
}

// PostgresConfig contains PostgreSQL database connection parameters.
// It includes connection pooling settings for optimal performance.
type PostgresConfig struct {
	Host                   string `yaml:"host"`                   // Database host address
	Port                   int    `yaml:"port"`                   // Database port (default: 5432)
	User                   string `yaml:"user"`                   // Database username
	Password               string `yaml:"password"`               // Database password
	DBName                 string `yaml:"dbname"`                 // Database name
	MaxOpenConnections     int    `yaml:"maxOpenConnections"`     // Maximum open connections
	MaxIdleConnections     int    `yaml:"maxIdleConnections"`     // Maximum idle connections
	ConnMaxLifetimeMinutes int    `yaml:"connMaxLifetimeMinutes"` // Connection lifetime in minutes
}

// MongoConfig contains MongoDB connection parameters.
type MongoConfig struct {
	URI      string `yaml:"uri"`      // Connection URI (default: mongodb://localhost:27017)
	Database string `yaml:"database"` // Database name
}

// S3Config contains S3-compatible object storage parameters used for
// file attachments.
type S3Config struct {
	Endpoint        string `yaml:"endpoint"`        // Custom endpoint for MinIO or other S3-compatible stores
	Region          string `yaml:"region"`          // AWS region
	Bucket          string `yaml:"bucket"`          // Bucket name
	AccessKeyID     string `yaml:"accessKeyId"`     // Static access key
	SecretAccessKey string `yaml:"secretAccessKey"` // Static secret key
	UsePathStyle    bool   `yaml:"usePathStyle"`    // Path-style addressing, required by MinIO
}

// AttachmentsConfig selects the storage for File element attachments.
// Supported types are "local" and "s3".
type AttachmentsConfig struct {
	Type     string `yaml:"type"`
	LocalDir string `yaml:"localDir"` // Directory for the "local" type
}

// CorsConfig contains Cross-Origin Resource Sharing (CORS) policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `yaml:"allowedOrigins"`   // Allowed origin domains
	AllowedMethods   []string `yaml:"allowedMethods"`   // Allowed HTTP methods
	AllowedHeaders   []string `yaml:"allowedHeaders"`   // Allowed request headers
	AllowCredentials bool     `yaml:"allowCredentials"` // Allow credentials in requests
}

// SwaggerConfig contains contact information injected into the served
// OpenAPI document.
type SwaggerConfig struct {
	ContactName  string `yaml:"contactName"`
	ContactEmail string `yaml:"contactEmail"`
	ContactURL   string `yaml:"contactURL"`
}

// LoadConfig loads the configuration from YAML files and environment variables.
//
// The function supports multiple configuration sources with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file (if provided)
// 3. Default values (lowest priority)
//
// Environment variables should use underscore notation (e.g., SERVER_PORT for server.port).
//
// Parameters:
//   - configPath: Path to the YAML configuration file. If empty, only environment
//     variables and defaults will be used.
//
// Returns:
//   - *Config: Loaded configuration structure
//   - error: Error if configuration loading fails
//
// Example:
//
//	config, err := LoadConfig("config/app.yaml")
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		log.Printf("📁 Loading config from file: %s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Println("📁 No config file provided — loading from environment variables only")
	}

	// Override config with environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	log.Println("✅ Configuration loaded successfully")
	PrintConfiguration(cfg)
	return cfg, nil
}

// setDefaults configures sensible default values for all configuration options.
//
// This function sets up defaults that allow the service to run in development
// environments without requiring extensive configuration. Production deployments
// should override these values through configuration files or environment variables.
//
// Parameters:
//   - v: Viper instance to configure with default values
//
// Default values include:
//   - Server: Port 5004, no context path
//   - Backend: In-memory object store
//   - Database: Local PostgreSQL on port 5432 with test credentials
//   - Attachments: Local directory storage
//   - CORS: Permissive policy allowing all origins and common methods
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5004)
	v.SetDefault("server.contextPath", "")
	v.SetDefault("server.strictVerification", false)

	// Backend defaults
	v.SetDefault("backend.type", "memory")

	// PostgreSQL defaults
	v.SetDefault("postgres.host", "db")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "admin")
	v.SetDefault("postgres.password", "admin123")
	v.SetDefault("postgres.dbname", "basyxTestDB")
	v.SetDefault("postgres.maxOpenConnections", 50)
	v.SetDefault("postgres.maxIdleConnections", 50)
	v.SetDefault("postgres.connMaxLifetimeMinutes", 5)

	// MongoDB defaults
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "basyxTestDB")

	// S3 defaults
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "aas-attachments")
	v.SetDefault("s3.usePathStyle", false)

	// Attachment storage defaults
	v.SetDefault("attachments.type", "local")
	v.SetDefault("attachments.localDir", "attachments")

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"*"})
	v.SetDefault("cors.allowCredentials", true)
}

// PrintConfiguration prints the current configuration to the console with sensitive data redacted.
//
// This function is useful for debugging and verifying configuration during startup.
// Sensitive information such as database credentials is masked to prevent accidental
// exposure in logs.
//
// Parameters:
//   - cfg: Configuration structure to print
//
// The output is formatted as pretty-printed JSON with the following redactions:
//   - Database host, username and password are replaced with "****"
//   - MongoDB URI and S3 credentials are replaced with "****"
func PrintConfiguration(cfg *Config) {
	// Create a copy of the config to avoid modifying the original
	cfgCopy := *cfg

	// Redact sensitive information if present in the Postgres configuration
	if cfg.Postgres.Host != "" {
		// Simple redaction that preserves the structure but hides credentials
		cfgCopy.Postgres.Host = "****"
		cfgCopy.Postgres.User = "****"
		cfgCopy.Postgres.Password = "****"
	}

	if cfg.Mongo.URI != "" {
		cfgCopy.Mongo.URI = "****"
	}

	if cfg.S3.AccessKeyID != "" || cfg.S3.SecretAccessKey != "" {
		cfgCopy.S3.AccessKeyID = "****"
		cfgCopy.S3.SecretAccessKey = "****"
	}

	// Convert to JSON for pretty printing
	configJSON, err := json.MarshalIndent(cfgCopy, "", "  ")
	if err != nil {
		log.Printf("Unable to marshal configuration to JSON: %v", err)
		return
	}

	log.Printf("📜 Loaded configuration:\n%s", string(configJSON))
}

// AddCors configures Cross-Origin Resource Sharing (CORS) middleware for the router.
//
// This function sets up CORS policies based on the provided configuration,
// enabling web applications from different domains to make requests to the API.
//
// Parameters:
//   - r: Chi router to configure with CORS middleware
//   - config: Configuration containing CORS policy settings
func AddCors(r *chi.Mux, config *Config) {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.CorsConfig.AllowedOrigins,
		AllowedMethods:   config.CorsConfig.AllowedMethods,
		AllowedHeaders:   config.CorsConfig.AllowedHeaders,
		AllowCredentials: config.CorsConfig.AllowCredentials,
	})
	r.Use(c.Handler)
}
