// Package app holds the dependencies shared by every route module
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/config"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/assistant"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/events"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/notify"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/ratelimit"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/storage"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/token"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/email"
)

type Deps struct {
	Config      *config.AppConfig
	DB          *gorm.DB
	Redis       redis.Cmdable // nil when redis is disabled
	Logger      *logger.Logger
	Tokens      *token.Issuer
	Auth        *middleware.Auth
	Notifier    *notify.Dispatcher
	Storage     storage.Store
	Limiter     ratelimit.Limiter
	AuthLimiter ratelimit.Limiter
	Assistant   *assistant.Service
	StartedAt   time.Time
}

// Build wires the infrastructure selected by cfg. The returned close func
// drains pending notifications and releases the kafka writer.
func Build(ctx context.Context, cfg *config.AppConfig, db *gorm.DB, rdb redis.Cmdable, log *logger.Logger) (*Deps, func(), error) {
	if log == nil {
		log = logger.Nop()
	}

	issuer := token.NewIssuer(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireMinutes)*time.Minute)

	store, err := storage.Open(ctx, cfg.Upload)
	if err != nil {
		return nil, nil, fmt.Errorf("init storage: %w", err)
	}

	var (
		sinks     []notify.Sink
		publisher *events.KafkaPublisher
	)
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		sinks = append(sinks, notify.NewPublisherSink(publisher))
	}
	if cfg.Smtp.Enabled {
		smtpConf := cfg.Smtp.Config
		sink, err := notify.NewEmailSink(email.NewClient(&smtpConf), db, cfg.Smtp.From, frontendOrigin(cfg))
		if err != nil {
			return nil, nil, fmt.Errorf("init email sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	dispatcher := notify.NewDispatcher(notify.NewGormStore(db), log, sinks...)

	deps := &Deps{
		Config:      cfg,
		DB:          db,
		Redis:       rdb,
		Logger:      log,
		Tokens:      issuer,
		Auth:        middleware.NewAuth(issuer, cfg.JWT.CookieName),
		Notifier:    dispatcher,
		Storage:     store,
		Limiter:     newLimiter(cfg.RateLimit, cfg.RateLimit.Requests, "rl:api", rdb, log),
		AuthLimiter: newLimiter(cfg.RateLimit, cfg.RateLimit.AuthRequests, "rl:auth", rdb, log),
		Assistant:   newAssistant(cfg.Assistant, rdb, log),
		StartedAt:   time.Now(),
	}

	closeFn := func() {
		dispatcher.Wait()
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				log.Warn(context.Background(), "failed to close kafka publisher", zap.Error(err))
			}
		}
	}
	return deps, closeFn, nil
}

func newLimiter(cfg config.RateLimitConfig, limit int, prefix string, rdb redis.Cmdable, log *logger.Logger) ratelimit.Limiter {
	if limit <= 0 {
		return ratelimit.Unlimited{}
	}
	if cfg.Backend == "redis" && rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, limit, cfg.Window, prefix, log)
	}
	return ratelimit.NewFixedWindow(limit, cfg.Window)
}

func newAssistant(cfg config.AssistantConfig, rdb redis.Cmdable, log *logger.Logger) *assistant.Service {
	var client assistant.Client = assistant.SimulatedClient{}
	if cfg.APIKey != "" {
		client = assistant.NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model)
	}

	var history assistant.HistoryStore = assistant.NewMemoryHistory(cfg.MaxHistory)
	if rdb != nil {
		history = assistant.NewRedisHistory(rdb, cfg.MaxHistory, 24*time.Hour)
	}
	return assistant.NewService(client, history, cfg.Timeout, log)
}

func frontendOrigin(cfg *config.AppConfig) string {
	if len(cfg.CORS.AllowedOrigins) > 0 {
		return cfg.CORS.AllowedOrigins[0]
	}
	return ""
}
