package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/caffeine-junky/jobconnect/internal/config"
	"github.com/caffeine-junky/jobconnect/internal/database"
	"github.com/caffeine-junky/jobconnect/internal/modules/notification"
	"github.com/caffeine-junky/jobconnect/internal/pkg/events"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"gorm.io/gorm/logger"
)

// notifier turns booking and payment events into notification rows. It
// shares the queue with the API; rows stored here get no live push.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.RabbitMQURL == "" {
		log.Fatal("RABBITMQ_URL is required")
	}

	db, err := database.Connect(cfg.DatabaseURL, database.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		LogLevel:        logger.Warn,
	})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	notifications := notification.NewService(repository.NewNotificationRepository(db), nil)
	consumer := events.NewConsumer(events.ConsumerConfig{
		URL:      cfg.RabbitMQURL,
		Exchange: cfg.EventsExchange,
		Queue:    cfg.NotifyQueue,
		Keys:     []string{"booking.*", "payment.*"},
	}, notifications.HandleEvent)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("notifier_starting exchange=%s queue=%s", cfg.EventsExchange, cfg.NotifyQueue)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("notifier stopped: %v", err)
	}
	log.Println("notifier_stopped")
}
