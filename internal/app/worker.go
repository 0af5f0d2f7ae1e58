package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoArmGo/FinanceApp/internal/core/ports"
	"github.com/GoArmGo/FinanceApp/internal/messaging/payloads"
)

// runWorker запускает потребителя RabbitMQ и пишет события по транзакциям
// в журнал аудита. Воркер — отдельный процесс, ядро запросов он не трогает.
func runWorker(
	ctx context.Context,
	logger *slog.Logger,
	eventConsumer ports.TransactionEventConsumer,
) error {
	logger.Info("worker started, waiting for transaction events")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	auditLogger := logger.With("component", "audit")

	// Обработчик события: структурированная запись в журнал аудита
	messageHandler := func(ctx context.Context, payload payloads.TransactionEventPayload) error {
		auditLogger.Info("transaction event",
			"action", payload.Action,
			"transaction_id", payload.TransactionID,
			"user_id", payload.UserID,
			"category_id", payload.CategoryID,
			"type", payload.Type,
			"amount_in_cents", payload.AmountInCents,
			"occurred_at", payload.OccurredAt.Format(time.RFC3339),
		)
		return nil
	}

	if err := eventConsumer.StartConsumingTransactionEvents(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	// Graceful Shutdown для воркера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping worker")
	cancelWorker()

	time.Sleep(2 * time.Second) // Небольшая задержка, чтобы логи успели выйти
	logger.Info("worker stopped gracefully")

	return nil
}
