package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/config"
	"github.com/caffeine-junky/jobconnect/internal/database"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	retention := flag.Duration("retention", cfg.NotificationRetention, "keep read notifications newer than this")
	flag.Parse()
	if *retention <= 0 {
		log.Fatal("retention must be positive")
	}

	db, err := database.Connect(cfg.DatabaseURL, database.Options{
		MaxOpenConns: 1,
		LogLevel:     logger.Warn,
	})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-*retention)
	n, err := repository.NewNotificationRepository(db).PurgeRead(ctx, cutoff)
	if err != nil {
		log.Fatalf("cleanup notifications failed: %v", err)
	}
	log.Printf("notification cleanup completed: deleted=%d before=%s", n, cutoff.Format(time.RFC3339))
}
