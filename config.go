package main

import (
	"log"
	"os"
	"strconv"
)

// Config holds everything read from the environment. Optional integrations
// (queue, cache, catalog bucket) stay nil/empty and the related features
// are disabled.
type Config struct {
	Port         string
	Env          string
	DBURL        string
	GoogleAPIKey string
	GeminiModel  string
	ReportModel  string

	RabbitMQURL string
	WorkerCount int

	RedisAddr string

	R2 *R2Config
}

type R2Config struct {
	AccountID  string
	Bucket     string
	AccessKey  string
	SecretKey  string
	CatalogKey string
}

// LoadConfig reads the environment. Required keys are fatal when missing.
func LoadConfig() *Config {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("empty DB_URL in environment")
	}
	googleAPIKey := os.Getenv("GOOGLE_API_KEY")
	if googleAPIKey == "" {
		log.Fatal("empty GOOGLE_API_KEY in environment")
	}

	workerCount, _ := strconv.Atoi(getEnv("WORKER_COUNT", "3"))
	if workerCount < 1 {
		workerCount = 3
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "development"),
		DBURL:        dbURL,
		GoogleAPIKey: googleAPIKey,
		GeminiModel:  getEnv("GEMINI_MODEL", ""),
		ReportModel:  getEnv("REPORT_MODEL", ""),
		RabbitMQURL:  os.Getenv("RABBITMQ_URL"),
		WorkerCount:  workerCount,
		RedisAddr:    os.Getenv("REDIS_ADDR"),
	}

	if accountID := os.Getenv("R2_ACCOUNT_ID"); accountID != "" {
		bucket := os.Getenv("R2_BUCKET")
		if bucket == "" {
			log.Fatal("empty R2_BUCKET in environment")
		}
		accessKey := os.Getenv("R2_ACCESS_KEY")
		if accessKey == "" {
			log.Fatal("empty R2_ACCESS_KEY in environment")
		}
		secretKey := os.Getenv("R2_SECRET_KEY")
		if secretKey == "" {
			log.Fatal("empty R2_SECRET_KEY in environment")
		}
		cfg.R2 = &R2Config{
			AccountID:  accountID,
			Bucket:     bucket,
			AccessKey:  accessKey,
			SecretKey:  secretKey,
			CatalogKey: getEnv("R2_CATALOG_KEY", "catalog.json"),
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
