package ports

import (
	"context"

	"github.com/GoArmGo/FinanceApp/internal/messaging/payloads"
)

// TransactionEventPublisher определяет методы для публикации событий по транзакциям
// Этот интерфейс используется бизнес-логикой после успешной записи в бд
type TransactionEventPublisher interface {
	PublishTransactionEvent(ctx context.Context, payload payloads.TransactionEventPayload) error
}

// TransactionEventConsumer определяет методы для потребления событий по транзакциям
// будет использоваться воркером аудита для получения событий из очереди
type TransactionEventConsumer interface {
	// StartConsumingTransactionEvents начинает прослушивание очереди событий
	// принимает функцию-обработчик, которая будет вызываться для каждого события
	StartConsumingTransactionEvents(ctx context.Context, handler func(context.Context, payloads.TransactionEventPayload) error) error
}
