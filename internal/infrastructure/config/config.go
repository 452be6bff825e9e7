package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Token TTLs are day-based to match the deployment environment contract.
	AccessTokenDays  int `env:"JWT_ACCESS_TOKEN_EXPIRES_DAYS,  default=1"`
	RefreshTokenDays int `env:"JWT_REFRESH_TOKEN_EXPIRES_DAYS, default=30"`

	BcryptCost int `env:"BCRYPT_COST, default=10"`

	Mongo MongoConfig
	Redis RedisConfig
	Media MediaConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=account_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MediaConfig configures the S3-compatible image host. PublicBaseURL is the
// prefix of the canonical URLs handed back to clients; Endpoint overrides the
// AWS endpoint for MinIO-style deployments.
type MediaConfig struct {
	Bucket        string `env:"S3_BUCKET,          default=avatars"`
	Region        string `env:"S3_REGION,          default=us-east-1"`
	Endpoint      string `env:"S3_ENDPOINT"`
	AccessKey     string `env:"S3_ACCESS_KEY"`
	SecretKey     string `env:"S3_SECRET_KEY"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

// AdminConfig holds the bootstrap admin credentials seeded at startup.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=GoWheelsAdmin"`
	Email    string `env:"ADMIN_EMAIL,    default=gowheels@admin.co.ke"`
	Password string `env:"ADMIN_PASSWORD, default=Admin@123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
