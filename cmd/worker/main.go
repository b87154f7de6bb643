package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"notesbytes_settlement/internal/adapter/http/routes"
	"notesbytes_settlement/internal/adapter/persistence/repository"
	"notesbytes_settlement/internal/infrastructure/database"
	"notesbytes_settlement/internal/infrastructure/notifications"
	"notesbytes_settlement/internal/infrastructure/payments"
	"notesbytes_settlement/internal/scheduler"
	"notesbytes_settlement/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB(ctx)

	revenueRepo := repository.NewRevenueDynamoRepository(ddb)
	paymentLogRepo := repository.NewPaymentLogDynamoRepository(ddb)
	sellerRepo := repository.NewSellerDynamoRepository(ddb)
	templateRepo := repository.NewEmailTemplateDynamoRepository(ddb)

	gateway, err := payments.NewPayoutGatewayFromEnv()
	if err != nil {
		log.Fatalf("payout gateway: %v", err)
	}
	notifier := notifications.NewEmailNotifierFromEnv(templateRepo)

	engine := usecase.NewSettlementUseCase(revenueRepo, paymentLogRepo, sellerRepo, gateway, notifier, usecase.SettlementConfig{
		AccountNumber:  os.Getenv("PAYOUT_ACCOUNT_NUMBER"),
		Currency:       os.Getenv("PAYOUT_CURRENCY"),
		Mode:           os.Getenv("PAYOUT_MODE"),
		GatewayTimeout: envDuration("SETTLEMENT_GATEWAY_TIMEOUT", 30*time.Second),
		BatchLimit:     envInt("SETTLEMENT_BATCH_LIMIT", 100),
	})
	opsUseCase := usecase.NewSettlementOpsUseCase(revenueRepo, paymentLogRepo, envDuration("SETTLEMENT_STALE_THRESHOLD", time.Hour))

	// Production cadence is daily; SETTLEMENT_INTERVAL shortens it for
	// development environments.
	sched := scheduler.New(
		envDuration("SETTLEMENT_INTERVAL", 24*time.Hour),
		envBool("SETTLEMENT_RUN_ON_START"),
		func(ctx context.Context) error {
			_, err := engine.RunPass(ctx)
			return err
		},
	)
	sched.Start(ctx)
	defer sched.Stop()

	routes.Run(opsUseCase)
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
