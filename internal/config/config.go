package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"ahlan_office/internal/config/connections/mongo"
	"ahlan_office/internal/config/connections/redis"
	"ahlan_office/internal/config/connections/s3"

	"github.com/joho/godotenv"
)

// CRMConfig is everything the remote CRM API client needs. Built once at
// startup, read-only afterwards.
type CRMConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type Config struct {
	Port        string
	OfficeToken string
	CRM         CRMConfig
	CacheTTL    time.Duration

	S3    *s3.S3
	Mongo *mongo.Mongo
	Redis *redis.Redis
}

func Init(ctx context.Context) *Config {
	_ = godotenv.Load()
	port := getenv("SERVER_PORT", "8070")

	s3c, err := s3.NewConnection(s3.ConnectionInfo{
		Endpoint:  getenv("AWS_ENDPOINT", "http://localhost:9000"),
		AccessKey: getenv("AWS_ACCESS_KEY_ID", "minioadmin"),
		SecretKey: getenv("AWS_SECRET_ACCESS_KEY", "minioadmin"),
		Region:    getenv("AWS_DEFAULT_REGION", "us-east-1"),
		Bucket:    getenv("AWS_BUCKET", "documents"),
		UseSSL:    getenv("AWS_USE_SSL", "false") == "true",
	})
	if err != nil {
		log.Fatal("S3 connect error:", err)
	}

	mg, err := mongo.NewConnection(ctx, mongo.ConnectionInfo{
		Scheme:     getenv("MONGO_SCHEME", "mongodb"),
		User:       getenv("MONGO_USER", "root"),
		Password:   getenv("MONGO_PASSWORD", "secret"),
		Host:       getenv("MONGO_HOST", "127.0.0.1"),
		Port:       getenv("MONGO_PORT", "27017"),
		DB:         getenv("MONGO_DB", "ahlan_office"),
		AuthSource: getenv("MONGO_AUTH_SOURCE", "admin"),
	})
	if err != nil {
		log.Fatal("Mongo connect error:", err)
	}

	rd, err := redis.NewConnection(ctx, redis.ConnectionInfo{
		Addr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		Password: getenv("REDIS_PASSWORD", ""),
		DB:       getenvAsInt("REDIS_DB", 0),
	})
	if err != nil {
		log.Fatal("Redis connect error:", err)
	}

	return &Config{
		Port:        port,
		OfficeToken: getenv("OFFICE_TOKEN", ""),
		CRM: CRMConfig{
			BaseURL: getenv("CRM_BASE_URL", "http://localhost:8000/api"),
			Token:   getenv("CRM_TOKEN", ""),
			Timeout: time.Duration(getenvAsInt("CRM_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		CacheTTL: time.Duration(getenvAsInt("CACHE_TTL_SECONDS", 30)) * time.Second,
		S3:       s3c,
		Mongo:    mg,
		Redis:    rd,
	}
}

func (c *Config) CheckConnections(ctx context.Context) error {
	var errs []error

	if c.Mongo == nil || c.Mongo.Client == nil {
		errs = append(errs, errors.New("mongo not initialized"))
	} else if err := c.Mongo.Client.Ping(ctx, nil); err != nil {
		errs = append(errs, fmt.Errorf("mongo ping failed: %w", err))
	}

	if c.Redis == nil || c.Redis.Client == nil {
		errs = append(errs, errors.New("redis not initialized"))
	} else if err := c.Redis.Client.Ping(ctx).Err(); err != nil {
		errs = append(errs, fmt.Errorf("redis ping failed: %w", err))
	}

	if c.S3 == nil || c.S3.Client == nil {
		errs = append(errs, errors.New("s3 not initialized"))
	} else if err := c.S3.EnsureBucket(ctx); err != nil {
		errs = append(errs, fmt.Errorf("s3 bucket check failed: %w", err))
	}

	if c.CRM.BaseURL == "" {
		errs = append(errs, errors.New("CRM_BASE_URL is empty"))
	}
	if c.CRM.Token == "" {
		errs = append(errs, errors.New("CRM_TOKEN is empty"))
	}

	if len(errs) == 0 {
		return nil
	}

	return errors.Join(errs...)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvAsInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return def
}
