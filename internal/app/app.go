package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/FinanceApp/internal/config"
	"github.com/GoArmGo/FinanceApp/internal/core/ports"
	"github.com/GoArmGo/FinanceApp/internal/database/client"
	"github.com/GoArmGo/FinanceApp/internal/usecase"
)

// App собирает все зависимости приложения и умеет запускаться
// в режиме HTTP-сервера или воркера аудита.
type App struct {
	Config *config.Config

	logger   *slog.Logger
	dbClient *client.Client

	userUseCase        usecase.UserUseCase
	categoryUseCase    usecase.CategoryUseCase
	transactionUseCase usecase.TransactionUseCase

	eventConsumer ports.TransactionEventConsumer
	eventsCloser  interface{ Close() }
}

// NewApp создает приложение из готовых зависимостей (собирает их di.BuildApp)
func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	userUseCase usecase.UserUseCase,
	categoryUseCase usecase.CategoryUseCase,
	transactionUseCase usecase.TransactionUseCase,
	eventConsumer ports.TransactionEventConsumer,
	eventsCloser interface{ Close() },
) *App {
	return &App{
		Config:             cfg,
		logger:             logger,
		dbClient:           dbClient,
		userUseCase:        userUseCase,
		categoryUseCase:    categoryUseCase,
		transactionUseCase: transactionUseCase,
		eventConsumer:      eventConsumer,
		eventsCloser:       eventsCloser,
	}
}

// Logger отдает основной логгер приложения
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и блокируется до завершения
func (a *App) Run(ctx context.Context, mode string) error {
	a.logger.Info("starting application", "mode", mode)

	var err error
	switch mode {
	case "server":
		err = runServer(ctx, a.Config, a.logger, a.userUseCase, a.categoryUseCase, a.transactionUseCase)
	case "worker":
		err = runWorker(ctx, a.logger, a.eventConsumer)
	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", mode)
	}
	if err != nil {
		return err
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("error during shutdown", "error", closeErr)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.eventsCloser != nil {
		a.eventsCloser.Close()
	}

	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	return nil
}
