package bootstrap

import (
	"context"
	"log"

	"logfiber-be/internal/config"
	"logfiber-be/internal/controller"
	"logfiber-be/internal/pkg/logger"
	"logfiber-be/internal/pkg/mailer"
	"logfiber-be/internal/repository/implementation"
	"logfiber-be/internal/service"
	"logfiber-be/pkg/alerting"
	"logfiber-be/pkg/cache"
	"logfiber-be/pkg/searchindex"

	pktNats "logfiber-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProjectController controller.IProjectController
	LogController     controller.ILogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (optional mirror of the in-process bus for external consumers)
	var natsPub *pktNats.Publisher
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			natsSub = nil
		}
	}

	// Redis-backed debounce cache, in-memory when Redis is not configured
	var debounceCache cache.Cache
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		debounceCache = cache.NewRedisCache(rdb)
	} else {
		log.Println("[INFO] REDIS_URL not set, using in-memory debounce cache")
		debounceCache = cache.NewMemoryCache()
	}

	// Search Index (Typesense-compatible); disabled means primary-store-only
	var index searchindex.Client
	if cfg.Search.Enabled {
		index = searchindex.NewHTTPClient(cfg.Search.URL, cfg.Search.APIKey)
		schema := searchindex.LogCollectionSchema(cfg.Search.Collection)
		if err := index.EnsureCollection(context.Background(), schema); err != nil {
			log.Printf("[WARN] Failed to provision search collection %q: %v", cfg.Search.Collection, err)
		}
	} else {
		log.Println("[INFO] Search index disabled, queries will use the primary store")
	}

	// 3. Repositories
	projectRepo := implementation.NewProjectRepository(db)
	logRepo := implementation.NewLogEventRepository(db)
	alarmRepo := implementation.NewAlarmRuleRepository(db)

	// 4. Alerting pipeline
	dispatcher := alerting.NewDispatcher(
		emailService,
		alerting.NewSlackSender(),
		alerting.NewWebhookSender(),
		sysLogger,
	)

	// 5. Services
	ingestService := service.NewIngestService(
		projectRepo,
		logRepo,
		index,
		cfg.Search.Collection,
		pubSub,
		natsPub,
		sysLogger,
	)
	queryService := service.NewQueryService(
		projectRepo,
		logRepo,
		index,
		cfg.Search.Collection,
		sysLogger,
	)
	purgeService := service.NewPurgeService(
		projectRepo,
		logRepo,
		index,
		cfg.Search.Collection,
		sysLogger,
	)
	alarmService := service.NewAlarmService(
		projectRepo,
		alarmRepo,
		debounceCache,
		dispatcher,
		cfg.App.ClientURL,
		sysLogger,
	)
	projectService := service.NewProjectService(projectRepo, alarmRepo)

	consumerService := service.NewConsumerService(
		pubSub,
		logRepo,
		alarmService,
		sysLogger,
	)
	if natsSub != nil {
		if err := consumerService.ConsumeNats(natsSub); err != nil {
			log.Printf("[WARN] Failed to attach NATS alarm consumer: %v", err)
		}
	}

	// 6. Controllers
	projectController := controller.NewProjectController(projectService)
	logController := controller.NewLogController(ingestService, queryService, purgeService)

	return &Container{
		ProjectController: projectController,
		LogController:     logController,
		ConsumerService:   consumerService,
	}
}
