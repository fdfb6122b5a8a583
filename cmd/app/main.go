package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alpinetrips/skipack/config"
	"github.com/alpinetrips/skipack/internal/bootstrap"
	"github.com/alpinetrips/skipack/internal/cache"
	"github.com/alpinetrips/skipack/internal/catalog"
	"github.com/alpinetrips/skipack/internal/kafka"
	"github.com/alpinetrips/skipack/internal/quote"
	"github.com/alpinetrips/skipack/internal/repository"
	"github.com/alpinetrips/skipack/internal/service/checkout"
	"github.com/alpinetrips/skipack/internal/service/packages"
	"github.com/alpinetrips/skipack/internal/service/users"
	"github.com/alpinetrips/skipack/internal/workflow"
	"github.com/jackc/pgx/v5/pgxpool"

	catalogsvc "github.com/alpinetrips/skipack/internal/service/catalog"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	provider := catalog.NewStaticProvider()
	engine := quote.NewEngine(cfg.Quote.StayNights, time.Duration(cfg.Quote.TTLMinutes)*time.Minute)
	sessions := workflow.NewManager(engine, time.Duration(cfg.Session.IdleMinutes)*time.Minute)
	bookingRepo := repository.NewBookingRepository(pool)

	catalogService := catalogsvc.NewCatalogService(provider, redisCache)
	packageService := packages.NewPackageService(sessions, provider)
	checkoutService := checkout.NewCheckoutService(
		sessions,
		bookingRepo,
		producer,
		cfg.Kafka.BookingTopic,
		checkout.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	userService := users.NewUserService(
		bookingRepo,
		redisCache,
		provider,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	if err := bootstrap.Run(ctx, cfg, catalogService, packageService, checkoutService, userService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
