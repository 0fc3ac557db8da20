package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"waterdelivery/cmd"
	httpadapter "waterdelivery/internal/adapters/in/http"
	"waterdelivery/internal/adapters/out/postgres/addressrepo"
	"waterdelivery/internal/adapters/out/postgres/orderrepo"
	"waterdelivery/internal/adapters/out/postgres/schedulerepo"
	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/domain/services"
	"waterdelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(connectionString(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLogDTO{},
		&addressrepo.AddressDTO{},
		&schedulerepo.ZoneCapacityDTO{},
		&schedulerepo.HolidayDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err = app.SeedSchedule(context.Background()); err != nil {
		log.Fatalf("Failed to seed schedule defaults: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateRemindStaleOrdersCommandHandler(),
		app.CreateAutoCancelStaleOrdersCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "waterdelivery"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		CutoffHour:       envIntOr("ORDER_CUTOFF_HOUR", services.DefaultCutoffHour),
		GlobalDailyLimit: envIntOr("GLOBAL_DAILY_LIMIT", services.DefaultGlobalDailyLimit),
		DefaultZoneLimit: envIntOr("DEFAULT_ZONE_LIMIT", services.DefaultZoneLimit),
		HorizonDays:      envIntOr("SLOT_HORIZON_DAYS", services.DefaultHorizonDays),
		FallbackZone:     envOr("FALLBACK_ZONE", services.DefaultFallbackZone),

		DuplicateWindow: envDurationOr("DUPLICATE_WINDOW", commands.DefaultDuplicateWindow),
		ReminderAfter:   envDurationOr("REMINDER_AFTER", commands.DefaultReminderAfter),
		AutoCancelAfter: envDurationOr("AUTO_CANCEL_AFTER", commands.DefaultAutoCancelAfter),

		OperatorContacts: splitContacts(envOr("OPERATOR_CONTACTS", "operator:duty")),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func splitContacts(raw string) []string {
	parts := strings.Split(raw, ",")
	contacts := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			contacts = append(contacts, trimmed)
		}
	}
	return contacts
}

func connectionString(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateEditOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateListNewOrdersQueryHandler(),
		app.CreateListStaleOrdersQueryHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateFindSlotQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
