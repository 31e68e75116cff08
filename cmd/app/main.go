package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"tracking/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	jobManager, err := app.CreateJobManager(logger)
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	waitForShutdown()
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		MovementLogCapacity: goDotEnvIntVariable("MOVEMENT_LOG_CAPACITY"),
		MovementReportsDir:  goDotEnvVariable("MOVEMENT_REPORTS_DIR"),
		SensorDataDir:       goDotEnvVariable("SENSOR_DATA_DIR"),
		SecretsDir:          goDotEnvVariable("SECRETS_DIR"),
		PatrolCronSpec:      goDotEnvVariable("PATROL_CRON_SPEC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func waitForShutdown() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
