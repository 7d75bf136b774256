package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"haul/cmd"
	httpin "haul/internal/adapters/in/http"
	"haul/internal/adapters/out/postgres/accountrepo"
	"haul/internal/adapters/out/postgres/jobrepo"
	"haul/internal/adapters/out/postgres/strikerepo"
	"haul/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	root, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateSettlePendingJobsCommandHandler(),
		root.CreateUnbanAccountsCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:           envVariable("HTTP_PORT"),
		DBHost:             envVariable("DB_HOST"),
		DBPort:             envVariable("DB_PORT"),
		DBUser:             envVariable("DB_USER"),
		DBPassword:         envVariable("DB_PASSWORD"),
		DBName:             envVariable("DB_NAME"),
		DBSslMode:          envVariable("DB_SSLMODE"),
		StripeSecretKey:    envVariable("STRIPE_SECRET_KEY"),
		GeocoderAPIKey:     envVariable("GEOCODER_API_KEY"),
		TwilioAccountSID:   envVariable("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    envVariable("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:    envVariable("TWILIO_FROM_PHONE"),
		IdentityURL:        envVariable("IDENTITY_SERVICE_URL"),
		PlatformFeePercent: envInt("PLATFORM_FEE_PERCENT", 20),
		StrikeBanThreshold: int(envInt("STRIKE_BAN_THRESHOLD", 3)),
		BanDuration:        time.Duration(envInt("BAN_DURATION_HOURS", 72)) * time.Hour,
		MinConfirmAge:      time.Duration(envInt("MIN_CONFIRM_AGE_MINUTES", 60)) * time.Minute,
	}
}

func envVariable(key string) string {
	return os.Getenv(key)
}

func envInt(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&jobrepo.JobDTO{},
		&accountrepo.AccountDTO{},
		&strikerepo.StrikeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		root.CreateRegisterAccountCommandHandler(),
		root.CreateAttachPaymentProfileCommandHandler(),
		root.CreatePostJobCommandHandler(),
		root.CreateAcceptJobCommandHandler(),
		root.CreateConfirmCompletionCommandHandler(),
		root.CreateReportConflictCommandHandler(),
		root.CreateGetOpenJobsQueryHandler(),
		root.CreateGetJobQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
