package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/FinanceApp/internal/core/ports"
	"github.com/GoArmGo/FinanceApp/internal/domain"
	"github.com/GoArmGo/FinanceApp/internal/messaging/payloads"
)

// transactionUseCase implements TransactionUseCase
type transactionUseCase struct {
	transactionStorage ports.TransactionStorage
	userStorage        ports.UserStorage
	categoryStorage    ports.CategoryStorage
	eventPublisher     ports.TransactionEventPublisher
	logger             *slog.Logger
}

// NewTransactionUseCase создает новый экземпляр TransactionUseCase.
// eventPublisher может быть nil — тогда события просто не публикуются.
func NewTransactionUseCase(
	transactionStorage ports.TransactionStorage,
	userStorage ports.UserStorage,
	categoryStorage ports.CategoryStorage,
	eventPublisher ports.TransactionEventPublisher,
	logger *slog.Logger,
) TransactionUseCase {
	return &transactionUseCase{
		transactionStorage: transactionStorage,
		userStorage:        userStorage,
		categoryStorage:    categoryStorage,
		eventPublisher:     eventPublisher,
		logger:             logger,
	}
}

// CreateTransaction создает транзакцию после проверки ссылок.
// Пользователь проверяется первым: если невалидны оба ID,
// наружу уходит ошибка именно по пользователю.
func (uc *transactionUseCase) CreateTransaction(ctx context.Context, in CreateTransactionInput) (*domain.Transaction, error) {
	user, err := uc.userStorage.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя по ID %d: %w", in.UserID, err)
	}
	if user == nil {
		return nil, domain.NewNotFound("User", in.UserID)
	}

	category, err := uc.categoryStorage.GetCategoryByID(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении категории по ID %d: %w", in.CategoryID, err)
	}
	if category == nil {
		return nil, domain.NewNotFound("Category", in.CategoryID)
	}

	date, err := time.Parse(isoDateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("usecase: некорректная дата транзакции %q: %w", in.Date, err)
	}

	transaction := &domain.Transaction{
		Title:         in.Title,
		Description:   in.Description,
		AmountInCents: in.AmountInCents,
		Date:          date,
		Type:          in.Type,
		UserID:        user.ID,
		CategoryID:    category.ID,
		User:          *user,
		Category:      *category,
	}

	if err := uc.transactionStorage.SaveTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении транзакции: %w", err)
	}

	uc.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"user_id", transaction.UserID,
		"type", transaction.Type,
		"amount_in_cents", transaction.AmountInCents,
	)

	uc.publishEvent(ctx, payloads.TransactionEventCreated, transaction)
	return transaction, nil
}

// GetTransactionByID получает транзакцию со связанными User и Category
func (uc *transactionUseCase) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	transaction, err := uc.transactionStorage.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении транзакции по ID %d: %w", id, err)
	}
	if transaction == nil {
		return nil, domain.NewNotFound("Transaction", id)
	}
	return transaction, nil
}

// ListTransactions получает все транзакции со связанными сущностями
func (uc *transactionUseCase) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := uc.transactionStorage.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении списка транзакций: %w", err)
	}
	return transactions, nil
}

// ListTransactionsByUserID получает транзакции пользователя.
// Существование пользователя здесь не проверяется: неизвестный ID даёт пустой список.
func (uc *transactionUseCase) ListTransactionsByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	transactions, err := uc.transactionStorage.ListTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении транзакций пользователя %d: %w", userID, err)
	}
	return transactions, nil
}

// UpdateTransaction меняет только переданные поля транзакции.
// Новые userId/categoryId обязаны ссылаться на существующие сущности.
// Как и в UpdateUser, собирается новая копия, затем одна запись в хранилище.
func (uc *transactionUseCase) UpdateTransaction(ctx context.Context, id int64, in UpdateTransactionInput) (*domain.Transaction, error) {
	transaction, err := uc.transactionStorage.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении транзакции по ID %d: %w", id, err)
	}
	if transaction == nil {
		return nil, domain.NewNotFound("Transaction", id)
	}

	updated := *transaction

	if in.UserID != nil {
		user, err := uc.userStorage.GetUserByID(ctx, *in.UserID)
		if err != nil {
			return nil, fmt.Errorf("usecase: ошибка при получении пользователя по ID %d: %w", *in.UserID, err)
		}
		if user == nil {
			return nil, domain.NewNotFound("User", *in.UserID)
		}
		updated.UserID = user.ID
		updated.User = *user
	}

	if in.CategoryID != nil {
		category, err := uc.categoryStorage.GetCategoryByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("usecase: ошибка при получении категории по ID %d: %w", *in.CategoryID, err)
		}
		if category == nil {
			return nil, domain.NewNotFound("Category", *in.CategoryID)
		}
		updated.CategoryID = category.ID
		updated.Category = *category
	}

	if in.Title != nil {
		updated.Title = *in.Title
	}
	if in.Description != nil {
		updated.Description = in.Description
	}
	if in.AmountInCents != nil {
		updated.AmountInCents = *in.AmountInCents
	}
	if in.Date != nil {
		date, err := time.Parse(isoDateLayout, *in.Date)
		if err != nil {
			return nil, fmt.Errorf("usecase: некорректная дата транзакции %q: %w", *in.Date, err)
		}
		updated.Date = date
	}
	if in.Type != nil {
		updated.Type = *in.Type
	}

	if err := uc.transactionStorage.SaveTransaction(ctx, &updated); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении транзакции: %w", err)
	}

	uc.logger.Info("transaction updated", "transaction_id", updated.ID)

	uc.publishEvent(ctx, payloads.TransactionEventUpdated, &updated)
	return &updated, nil
}

// DeleteTransaction удаляет транзакцию по ID
func (uc *transactionUseCase) DeleteTransaction(ctx context.Context, id int64) error {
	transaction, err := uc.transactionStorage.GetTransactionByID(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: ошибка при получении транзакции по ID %d: %w", id, err)
	}
	if transaction == nil {
		return domain.NewNotFound("Transaction", id)
	}

	if err := uc.transactionStorage.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("usecase: ошибка при удалении транзакции %d: %w", id, err)
	}

	uc.logger.Info("transaction deleted", "transaction_id", id)

	uc.publishEvent(ctx, payloads.TransactionEventDeleted, transaction)
	return nil
}

// GetTransactionSummary считает сводку по транзакциям пользователя.
// Сводка пересчитывается на каждый запрос, кеширования нет.
// Арифметика строго целочисленная, в центах.
func (uc *transactionUseCase) GetTransactionSummary(ctx context.Context, userID int64) (*domain.Summary, error) {
	transactions, err := uc.transactionStorage.ListTransactionsForSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении транзакций для сводки пользователя %d: %w", userID, err)
	}

	summary := &domain.Summary{}
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionTypeIncome:
			summary.TotalIncome += t.AmountInCents
		case domain.TransactionTypeExpense:
			summary.TotalExpense += t.AmountInCents
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense
	summary.TransactionCount = int64(len(transactions))

	return summary, nil
}

// publishEvent отправляет событие по транзакции в очередь.
// Публикация best-effort: ошибка пишется в лог и не роняет запрос.
func (uc *transactionUseCase) publishEvent(ctx context.Context, action string, t *domain.Transaction) {
	if uc.eventPublisher == nil {
		return
	}

	payload := payloads.TransactionEventPayload{
		Action:        action,
		TransactionID: t.ID,
		UserID:        t.UserID,
		CategoryID:    t.CategoryID,
		Type:          string(t.Type),
		AmountInCents: t.AmountInCents,
		OccurredAt:    time.Now().UTC(),
	}

	if err := uc.eventPublisher.PublishTransactionEvent(ctx, payload); err != nil {
		uc.logger.Warn("failed to publish transaction event",
			"action", action,
			"transaction_id", t.ID,
			"error", err,
		)
	}
}
