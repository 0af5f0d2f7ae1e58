package payloads

import "time"

// Действия над транзакцией, попадающие в очередь событий
const (
	TransactionEventCreated = "created"
	TransactionEventUpdated = "updated"
	TransactionEventDeleted = "deleted"
)

// TransactionEventPayload представляет событие изменения транзакции,
// публикуемое в RabbitMQ после успешной записи в бд.
// Воркер аудита читает эти события и пишет их в журнал.
type TransactionEventPayload struct {
	Action        string    `json:"action"`
	TransactionID int64     `json:"transaction_id"`
	UserID        int64     `json:"user_id"`
	CategoryID    int64     `json:"category_id"`
	Type          string    `json:"type"`
	AmountInCents int64     `json:"amount_in_cents"`
	OccurredAt    time.Time `json:"occurred_at"`
}
