package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"

	"github.com/dishalabs/disha-backend/internal/catalog"
	"github.com/dishalabs/disha-backend/internal/chat"
	"github.com/dishalabs/disha-backend/internal/database"
	"github.com/dishalabs/disha-backend/internal/flows"
	"github.com/dishalabs/disha-backend/internal/logger"
	"github.com/dishalabs/disha-backend/internal/recommend"
)

func main() {
	_ = godotenv.Load()
	cfg := LoadConfig()

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("error creating logger. err: ", err)
	}
	defer appLog.Sync()

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		appLog.Fatal("error opening db", "error", err)
	}
	dbqueries := database.New(db)

	ctx := context.Background()

	cat := loadCatalog(ctx, cfg, appLog)
	appLog.Info("catalog loaded", "entries", cat.Len())

	flowClient, err := flows.NewClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModel, appLog)
	if err != nil {
		appLog.Fatal("failed to create flow client", "error", err)
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		appLog.Info("recommendation cache enabled", "addr", cfg.RedisAddr)
	}

	recommender := recommend.NewService(cat, flowClient, cache, appLog)
	chats := chat.NewManager(flowClient)

	var rabbitConn *amqp.Connection
	if cfg.RabbitMQURL != "" {
		// create agent and runner for the async report path
		agentName := "career counselor"
		counselor, err := GetAgent(cfg.GoogleAPIKey, cfg.ReportModel, agentName)
		if err != nil {
			appLog.Fatal("failed to create agent", "error", err)
		}

		inMemoryService := session.InMemoryService()

		r, err := runner.New(runner.Config{
			AppName:        counselor.Name(),
			Agent:          counselor,
			SessionService: inMemoryService,
		})
		if err != nil {
			appLog.Fatal("failed to create runner", "error", err)
		}

		rabbitConn, err = amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			appLog.Fatal("error connecting to RabbitMQ", "error", err)
		}

		workerConfig := WorkerConfig{
			DB:                  dbqueries,
			Catalog:             cat,
			RabbitConn:          rabbitConn,
			RabbitMQURL:         cfg.RabbitMQURL,
			AgentRunner:         r,
			AgentSessionService: inMemoryService,
			AgentName:           agentName,
			Log:                 appLog,
		}
		appLog.Info("starting report worker pool", "workers", cfg.WorkerCount)
		go workerConfig.StartConsumerWorkerPool(cfg.WorkerCount)
	} else {
		appLog.Info("RABBITMQ_URL not set, async reports disabled")
	}

	h := NewHandler(appLog, dbqueries, cat, recommender, chats, flowClient, rabbitConn)
	router := newRouter(h, cfg.Env)

	appLog.Info("starting server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("failed to start server", "error", err)
	}
}

// loadCatalog prefers a catalog object from the R2 bucket and falls back to
// the builtin dataset when the bucket is unreachable or not configured.
func loadCatalog(ctx context.Context, cfg *Config, appLog *logger.Logger) *catalog.Catalog {
	if cfg.R2 == nil {
		return catalog.Builtin()
	}

	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2.AccessKey, cfg.R2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		appLog.Warn("error creating aws config, using builtin catalog", "error", err)
		return catalog.Builtin()
	}

	awsClient := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2.AccountID))
	})

	data, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, awsClient, cfg.R2.Bucket, cfg.R2.CatalogKey)
	})
	if err != nil {
		appLog.Warn("failed to download catalog override, using builtin catalog", "error", err)
		return catalog.Builtin()
	}

	cat, err := catalog.LoadJSON(data)
	if err != nil {
		appLog.Warn("invalid catalog override, using builtin catalog", "error", err)
		return catalog.Builtin()
	}
	return cat
}
