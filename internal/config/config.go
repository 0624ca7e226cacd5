// Package config provides configuration structures and validation for the
// compliance engine. It handles environment-based configuration for all major
// components including the HTTP server, database connections, message queues,
// and the reconciliation/avoidance thresholds.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration with settings for all
// components. Each field represents a major subsystem's configuration and is
// validated during application startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Kafka       KafkaConfig
	Postgres    PostgresConfig
	MongoDB     MongoDBConfig
	Engine      EngineConfig
	WorkerPool  WorkerPoolConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// KafkaConfig contains Kafka configuration
type KafkaConfig struct {
	Brokers           string
	FeedTopic         string // Transaction feed batches from the banking data provider
	ReviewQueueTopic  string // Escalations for human review
	NumPartitions     int    // Number of partitions for topics
	ReplicationFactor int    // Replication factor for topics
	ConsumerGroup     string
	MinBytes          int
	MaxBytes          int
	MaxWait           time.Duration
	StartOffset       int64
	DLQTopic          string // Topic for unparseable feed messages
}

// PostgresConfig contains PostgreSQL configuration
type PostgresConfig struct {
	URL             string        // Database connection string
	MaxConns        int32         // Maximum number of open connections
	MinConns        int32         // Maximum number of idle connections
	ConnMaxLifetime time.Duration // Maximum lifetime of a connection
	ConnMaxIdleTime time.Duration // Maximum idle time of a connection
	MigrationsPath  string        // Path to migration files
}

// MongoDBConfig contains MongoDB configuration
type MongoDBConfig struct {
	URI             string
	Database        string
	Timeout         time.Duration
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

// EngineConfig contains the reconciliation and avoidance thresholds. These are
// starting heuristics, not calibrated values; they live in configuration so
// they can be tuned without code changes. All amounts are kobo (minor units).
type EngineConfig struct {
	FeeAmount               int64         // Fixed statutory fee size
	TransferThreshold       int64         // Minimum transfer amount the levy applies to
	LookbackCount           int           // Maximum transactions searched backward for a linked transfer
	LookbackWindow          time.Duration // Maximum age of a linked transfer relative to its fee
	NameSimilarityThreshold float64       // Jaccard similarity above which names match
	LargeGiftThreshold      int64         // Gift amount above which a lone gift narration is flagged
	RoundAmountUnit         int64         // Round-number rule: amount must be a multiple of this
	RoundAmountMinimum      int64         // Round-number rule: amount must be at least this
	AmountDiscrepancyPct    float64       // Counterparty-reported amount discrepancy tolerance (fraction)
}

// WorkerPoolConfig contains worker pool configuration
type WorkerPoolConfig struct {
	Size int // Maximum number of workers in the pool
}

// validate performs comprehensive validation of all configuration values,
// ensuring they meet minimum requirements and logical constraints
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate Kafka config
	if len(c.Kafka.Brokers) == 0 {
		validationErrors = append(validationErrors, "KAFKA_BROKERS is required")
	}
	if c.Kafka.FeedTopic == "" {
		validationErrors = append(validationErrors, "KAFKA_FEED_TOPIC is required")
	}
	if c.Kafka.ReviewQueueTopic == "" {
		validationErrors = append(validationErrors, "KAFKA_REVIEW_QUEUE_TOPIC is required")
	}
	if c.Kafka.ConsumerGroup == "" {
		validationErrors = append(validationErrors, "KAFKA_CONSUMER_GROUP is required")
	}
	if c.Kafka.MinBytes <= 0 {
		validationErrors = append(validationErrors, "KAFKA_CONSUMER_MIN_BYTES must be greater than 0")
	}
	if c.Kafka.MaxBytes <= 0 {
		validationErrors = append(validationErrors, "KAFKA_CONSUMER_MAX_BYTES must be greater than 0")
	}
	if c.Kafka.MaxWait <= 0 {
		validationErrors = append(validationErrors, "KAFKA_CONSUMER_MAX_WAIT must be greater than 0")
	}
	if c.Kafka.DLQTopic == "" {
		validationErrors = append(validationErrors, "KAFKA_DLQ_TOPIC is required")
	}

	// Validate PostgreSQL config
	if c.Postgres.URL == "" {
		validationErrors = append(validationErrors, "POSTGRES_URL is required")
	}
	if c.Postgres.MaxConns <= 0 {
		validationErrors = append(validationErrors, "POSTGRES_MAX_CONNS must be greater than 0")
	}
	if c.Postgres.MinConns <= 0 {
		validationErrors = append(validationErrors, "POSTGRES_MIN_CONNS must be greater than 0")
	}
	if c.Postgres.ConnMaxLifetime <= 0 {
		validationErrors = append(validationErrors, "POSTGRES_MAX_CONN_LIFETIME must be greater than 0")
	}
	if c.Postgres.ConnMaxIdleTime <= 0 {
		validationErrors = append(validationErrors, "POSTGRES_MAX_CONN_IDLE_TIME must be greater than 0")
	}

	// Validate MongoDB config
	if c.MongoDB.URI == "" {
		validationErrors = append(validationErrors, "MONGO_URI is required")
	}
	if c.MongoDB.Database == "" {
		validationErrors = append(validationErrors, "MONGO_DATABASE is required")
	}
	if c.MongoDB.Timeout <= 0 {
		validationErrors = append(validationErrors, "MONGO_TIMEOUT must be greater than 0")
	}
	if c.MongoDB.MaxPoolSize <= 0 {
		validationErrors = append(validationErrors, "MONGO_MAX_POOL_SIZE must be greater than 0")
	}
	if c.MongoDB.MinPoolSize <= 0 {
		validationErrors = append(validationErrors, "MONGO_MIN_POOL_SIZE must be greater than 0")
	}
	if c.MongoDB.MaxConnIdleTime <= 0 {
		validationErrors = append(validationErrors, "MONGO_MAX_CONN_IDLE_TIME must be greater than 0")
	}

	// Validate Engine config
	if c.Engine.FeeAmount <= 0 {
		validationErrors = append(validationErrors, "ENGINE_FEE_AMOUNT must be greater than 0")
	}
	if c.Engine.TransferThreshold <= 0 {
		validationErrors = append(validationErrors, "ENGINE_TRANSFER_THRESHOLD must be greater than 0")
	}
	if c.Engine.LookbackCount <= 0 {
		validationErrors = append(validationErrors, "ENGINE_LOOKBACK_COUNT must be greater than 0")
	}
	if c.Engine.LookbackWindow <= 0 {
		validationErrors = append(validationErrors, "ENGINE_LOOKBACK_WINDOW must be greater than 0")
	}
	if c.Engine.NameSimilarityThreshold <= 0 || c.Engine.NameSimilarityThreshold >= 1 {
		validationErrors = append(validationErrors, "ENGINE_NAME_SIMILARITY_THRESHOLD must be between 0 and 1")
	}
	if c.Engine.LargeGiftThreshold <= 0 {
		validationErrors = append(validationErrors, "ENGINE_LARGE_GIFT_THRESHOLD must be greater than 0")
	}
	if c.Engine.RoundAmountUnit <= 0 {
		validationErrors = append(validationErrors, "ENGINE_ROUND_AMOUNT_UNIT must be greater than 0")
	}
	if c.Engine.RoundAmountMinimum <= 0 {
		validationErrors = append(validationErrors, "ENGINE_ROUND_AMOUNT_MINIMUM must be greater than 0")
	}
	if c.Engine.AmountDiscrepancyPct <= 0 || c.Engine.AmountDiscrepancyPct >= 1 {
		validationErrors = append(validationErrors, "ENGINE_AMOUNT_DISCREPANCY_PCT must be between 0 and 1")
	}

	// Validate WorkerPool config
	if c.WorkerPool.Size <= 0 {
		validationErrors = append(validationErrors, "WORKER_POOL_SIZE must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
