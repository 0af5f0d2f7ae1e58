package di

import (
	"github.com/GoArmGo/FinanceApp/internal/app"
	"github.com/GoArmGo/FinanceApp/internal/config"
	"github.com/GoArmGo/FinanceApp/internal/database/client"
	"github.com/GoArmGo/FinanceApp/internal/database/storage"
	"github.com/GoArmGo/FinanceApp/internal/logger"
	"github.com/GoArmGo/FinanceApp/internal/rabbitmq"
	"github.com/GoArmGo/FinanceApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx + миграции + GORM)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.Gorm, slogger)
	categoryStorage := storage.NewCategoryStorage(dbClient.Gorm, slogger)
	transactionStorage := storage.NewTransactionStorage(dbClient.Gorm, slogger)

	// 4. Инициализация RabbitMQ клиента (publisher и consumer в одном лице)
	rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 5. Инициализация бизнес-логики (usecases)
	userUseCase := usecase.NewUserUseCase(userStorage, transactionStorage, slogger)
	categoryUseCase := usecase.NewCategoryUseCase(categoryStorage, transactionStorage, slogger)
	transactionUseCase := usecase.NewTransactionUseCase(
		transactionStorage,
		userStorage,
		categoryStorage,
		rabbitMQClient,
		slogger,
	)

	// 6. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		userUseCase,
		categoryUseCase,
		transactionUseCase,
		rabbitMQClient,
		rabbitMQClient,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
