package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/config"
	"github.com/caffeine-junky/jobconnect/internal/database"
	"github.com/caffeine-junky/jobconnect/internal/middleware"
	"github.com/caffeine-junky/jobconnect/internal/modules/admin"
	"github.com/caffeine-junky/jobconnect/internal/modules/auth"
	"github.com/caffeine-junky/jobconnect/internal/modules/availability"
	"github.com/caffeine-junky/jobconnect/internal/modules/booking"
	"github.com/caffeine-junky/jobconnect/internal/modules/catalog"
	"github.com/caffeine-junky/jobconnect/internal/modules/client"
	"github.com/caffeine-junky/jobconnect/internal/modules/notification"
	"github.com/caffeine-junky/jobconnect/internal/modules/payment"
	"github.com/caffeine-junky/jobconnect/internal/modules/report"
	"github.com/caffeine-junky/jobconnect/internal/modules/review"
	"github.com/caffeine-junky/jobconnect/internal/modules/search"
	"github.com/caffeine-junky/jobconnect/internal/modules/technician"
	"github.com/caffeine-junky/jobconnect/internal/modules/techservice"
	"github.com/caffeine-junky/jobconnect/internal/pkg/cache"
	"github.com/caffeine-junky/jobconnect/internal/pkg/events"
	"github.com/caffeine-junky/jobconnect/internal/pkg/jwt"
	"github.com/caffeine-junky/jobconnect/internal/pkg/password"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
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

	rdb := cache.NewRedisClient(cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	var queryCache *cache.Cache
	if cfg.CacheEnabled {
		queryCache = cache.New(rdb, "jobconnect", cfg.CacheTTL)
	}

	hub := notification.NewHub()
	tokens := jwt.New(cfg.JWTSecret, cfg.TokenTTL())
	notifications := notification.NewService(repository.NewNotificationRepository(db), hub)
	publisher := newPublisher(cfg, notifications)

	ctx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	if _, ok := publisher.(*events.AMQPPublisher); ok {
		// consuming here as well lets this process push to its own sockets
		consumer := events.NewConsumer(events.ConsumerConfig{
			URL:      cfg.RabbitMQURL,
			Exchange: cfg.EventsExchange,
			Queue:    cfg.NotifyQueue,
			Keys:     []string{"booking.*", "payment.*"},
		}, notifications.HandleEvent)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("consumer_stopped error=%q", err.Error())
			}
		}()
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := buildRouter(cfg, db, rdb, queryCache, hub, tokens, notifications, publisher)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("server_starting addr=%s env=%s", srv.Addr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("shutdown_signal_received")

	stopConsumer()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server_shutdown_error error=%q", err.Error())
	}
	hub.Close()
	_ = publisher.Close()
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("server_shutdown_complete")
}

// newPublisher sends events to RabbitMQ when configured and reachable, and
// otherwise straight to the notification service.
func newPublisher(cfg *config.Config, notifications *notification.Service) events.Publisher {
	if cfg.RabbitMQURL == "" {
		log.Println("events_publisher mode=local")
		return notification.NewLocalPublisher(notifications)
	}
	p, err := events.NewAMQPPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
	if err != nil {
		log.Printf("events_publisher mode=local error=%q", err.Error())
		return notification.NewLocalPublisher(notifications)
	}
	log.Printf("events_publisher mode=amqp exchange=%s", cfg.EventsExchange)
	return p
}

func buildRouter(
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	queryCache *cache.Cache,
	hub *notification.Hub,
	tokens *jwt.Service,
	notifications *notification.Service,
	publisher events.Publisher,
) *gin.Engine {
	hasher := password.NewHasher(cfg.BcryptCost)

	adminRepo := repository.NewAdminRepository(db)
	clientRepo := repository.NewClientRepository(db)
	techRepo := repository.NewTechnicianRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	adminService := admin.NewService(adminRepo, repository.NewVerifiedRepository(db), clientRepo, techRepo, hasher)
	clientService := client.NewService(clientRepo, repository.NewFavoriteRepository(db), techRepo, hasher)
	technicianService := technician.NewService(techRepo, hasher)
	authService := auth.NewService(
		auth.AdminAccounts(adminService),
		auth.ClientAccounts(clientService),
		auth.TechnicianAccounts(technicianService),
		tokens,
	)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger(cfg.Debug))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := r.Group(cfg.APIV1Str)
	protected := r.Group(cfg.APIV1Str)
	protected.Use(middleware.JWTAuth(tokens))

	loginLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Enabled:        cfg.RateLimitEnabled,
		Capacity:       cfg.RateLimitCapacity,
		RefillTokens:   1,
		RefillInterval: cfg.RateLimitRefillInterval,
		Prefix:         "rl:login",
	}, rdb)

	auth.NewHandler(authService).RegisterRoutes(public, protected, loginLimit)
	admin.NewHandler(adminService).RegisterRoutes(protected)
	client.NewHandler(clientService).RegisterRoutes(public, protected)
	technician.NewHandler(technicianService).RegisterRoutes(public, protected)
	catalog.NewHandler(catalog.NewService(serviceRepo)).RegisterRoutes(public, protected)
	techservice.NewHandler(techservice.NewService(repository.NewTechnicianServiceRepository(db), techRepo, serviceRepo)).RegisterRoutes(protected)
	availability.NewHandler(availability.NewService(repository.NewAvailabilityRepository(db), techRepo)).RegisterRoutes(protected)
	booking.NewHandler(booking.NewService(bookingRepo, clientRepo, techRepo, publisher)).RegisterRoutes(protected)
	payment.NewHandler(payment.NewService(repository.NewPaymentRepository(db), bookingRepo, publisher)).RegisterRoutes(protected)
	review.NewHandler(review.NewService(repository.NewReviewRepository(db), bookingRepo)).RegisterRoutes(protected)
	notification.NewHandler(notifications, notification.NewWSHandler(hub, tokens, cfg.CORSAllowedOrigins)).RegisterRoutes(public, protected)
	search.NewHandler(search.NewService(repository.NewSearchRepository(db), clientRepo, queryCache)).RegisterRoutes(protected)
	report.NewHandler(report.NewService(repository.NewReportRepository(db), techRepo, queryCache)).RegisterRoutes(protected)

	return r
}
