package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Snapshot SnapshotConfig
}

type ServerConfig struct {
	Port string
}

// SnapshotConfig selects where the lead collection blob lives.
// Backend is one of: memory, file, postgres, redis, s3.
type SnapshotConfig struct {
	Backend  string
	Key      string
	FilePath string

	DatabaseURL string

	RedisURL string

	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Snapshot: SnapshotConfig{
			Backend:  getEnv("SNAPSHOT_BACKEND", "file"),
			Key:      getEnv("SNAPSHOT_KEY", "vidyasathi-leads"),
			FilePath: getEnv("SNAPSHOT_FILE", "data/leads.json"),

			DatabaseURL: getEnv("DATABASE_URL", ""),

			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

			S3Region:    getEnv("S3_REGION", "eu-central-1"),
			S3Bucket:    getEnv("S3_BUCKET", "vidyasathi-snapshots"),
			S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey: getEnv("S3_SECRET_KEY", ""),
			S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
