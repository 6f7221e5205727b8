package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/config"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/geocoder"
	v1 "github.com/YoussefElshafei/BridgeAid-Project/internal/handler/http/v1"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/repository"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/webhook"
	"github.com/YoussefElshafei/BridgeAid-Project/pkg/logger"
	"github.com/YoussefElshafei/BridgeAid-Project/pkg/postgres"
	redisclient "github.com/YoussefElshafei/BridgeAid-Project/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/YoussefElshafei/BridgeAid-Project/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title BridgeAid Incident API
// @version 1.0
// @description Incident reporting and confirmation backend for the BridgeAid disaster-preparedness app.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков о подтверждениях
	confirmationPublisher := webhook.NewRedisConfirmationPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация геокодера с кэшем в Redis
	nominatim := geocoder.NewNominatimClient(cfg, log)
	cachedGeocoder := geocoder.NewCachedGeocoder(nominatim, redisClient, cfg.GeocodeCacheTTL, log)

	// Инициализация репозиториев
	reportRepo := repository.NewReportRepository(dbpool, redisClient, cfg.ConfirmedCacheTTL)
	userRepo := repository.NewUserRepository(dbpool)
	volunteerRepo := repository.NewVolunteerRepository(dbpool)
	aidRepo := repository.NewAidRepository(dbpool)

	// Инициализация сервисов
	clock := clockwork.NewRealClock()
	incidentService := service.NewIncidentService(reportRepo, cachedGeocoder, log, cfg, confirmationPublisher, clock)
	authService := service.NewAuthService(userRepo, log, cfg, clock)
	volunteerService := service.NewVolunteerService(volunteerRepo, log)
	aidService := service.NewAidService(aidRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, authService, volunteerService, aidService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Маршрут метрик Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
