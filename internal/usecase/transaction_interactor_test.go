package usecase

import (
	"context"
	"testing"

	"github.com/GoArmGo/FinanceApp/internal/domain"
	"github.com/GoArmGo/FinanceApp/internal/messaging/payloads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transactionFixture struct {
	uc                 TransactionUseCase
	userStorage        *fakeUserStorage
	categoryStorage    *fakeCategoryStorage
	transactionStorage *fakeTransactionStorage
	publisher          *fakeEventPublisher

	user     *domain.User
	category *domain.Category
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	t.Helper()

	f := &transactionFixture{
		userStorage:        newFakeUserStorage(),
		categoryStorage:    newFakeCategoryStorage(),
		transactionStorage: newFakeTransactionStorage(),
		publisher:          &fakeEventPublisher{},
	}
	f.uc = NewTransactionUseCase(f.transactionStorage, f.userStorage, f.categoryStorage, f.publisher, testLogger())

	f.user = &domain.User{Email: "a@x.com", Document: "111", PasswordHash: "hash"}
	require.NoError(t, f.userStorage.SaveUser(context.Background(), f.user))

	f.category = &domain.Category{Name: "Food"}
	require.NoError(t, f.categoryStorage.SaveCategory(context.Background(), f.category))

	return f
}

func (f *transactionFixture) createInput() CreateTransactionInput {
	return CreateTransactionInput{
		Title:         "Lunch",
		CategoryID:    f.category.ID,
		AmountInCents: 1200,
		UserID:        f.user.ID,
		Date:          "2024-01-01",
		Type:          domain.TransactionTypeExpense,
	}
}

func TestCreateTransactionRoundTrip(t *testing.T) {
	f := newTransactionFixture(t)

	in := f.createInput()
	in.Description = strPtr("sushi place")

	created, err := f.uc.CreateTransaction(context.Background(), in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := f.uc.GetTransactionByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Lunch", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "sushi place", *got.Description)
	assert.Equal(t, int64(1200), got.AmountInCents)
	assert.Equal(t, domain.TransactionTypeExpense, got.Type)
	assert.Equal(t, "2024-01-01", got.Date.Format("2006-01-02"))
	assert.Equal(t, f.user.ID, got.UserID)
	assert.Equal(t, f.category.ID, got.CategoryID)

	// Связанные сущности подгружены целиком
	assert.Equal(t, f.user.Email, got.User.Email)
	assert.Equal(t, f.category.Name, got.Category.Name)
}

func TestCreateTransactionUnknownReferences(t *testing.T) {
	f := newTransactionFixture(t)

	tests := []struct {
		name       string
		userID     int64
		categoryID int64
		wantEntity string
		wantID     int64
	}{
		{name: "unknown user", userID: 99, categoryID: f.category.ID, wantEntity: "User", wantID: 99},
		{name: "unknown category", userID: f.user.ID, categoryID: 77, wantEntity: "Category", wantID: 77},
		// При двух невалидных ссылках первым проверяется пользователь
		{name: "both unknown", userID: 99, categoryID: 77, wantEntity: "User", wantID: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := f.createInput()
			in.UserID = tt.userID
			in.CategoryID = tt.categoryID

			_, err := f.uc.CreateTransaction(context.Background(), in)

			var notFound *domain.NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.wantEntity, notFound.Entity)
			assert.Equal(t, tt.wantID, notFound.ID)

			// Транзакция не сохранилась
			all, listErr := f.uc.ListTransactions(context.Background())
			require.NoError(t, listErr)
			assert.Empty(t, all)
		})
	}
}

func TestUpdateTransactionPartial(t *testing.T) {
	f := newTransactionFixture(t)

	created, err := f.uc.CreateTransaction(context.Background(), f.createInput())
	require.NoError(t, err)

	updated, err := f.uc.UpdateTransaction(context.Background(), created.ID, UpdateTransactionInput{
		Title: strPtr("Dinner"),
	})
	require.NoError(t, err)

	// Поменялся только заголовок
	assert.Equal(t, "Dinner", updated.Title)
	assert.Equal(t, created.AmountInCents, updated.AmountInCents)
	assert.Equal(t, created.Type, updated.Type)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.CategoryID, updated.CategoryID)
	assert.Equal(t, created.Date, updated.Date)
}

func TestUpdateTransactionVerifiesNewReferences(t *testing.T) {
	f := newTransactionFixture(t)

	created, err := f.uc.CreateTransaction(context.Background(), f.createInput())
	require.NoError(t, err)

	badUserID := int64(99)
	_, err = f.uc.UpdateTransaction(context.Background(), created.ID, UpdateTransactionInput{UserID: &badUserID})

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User", notFound.Entity)

	badCategoryID := int64(77)
	_, err = f.uc.UpdateTransaction(context.Background(), created.ID, UpdateTransactionInput{CategoryID: &badCategoryID})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Category", notFound.Entity)
}

func TestUpdateTransactionReparsesDate(t *testing.T) {
	f := newTransactionFixture(t)

	created, err := f.uc.CreateTransaction(context.Background(), f.createInput())
	require.NoError(t, err)

	updated, err := f.uc.UpdateTransaction(context.Background(), created.ID, UpdateTransactionInput{
		Date: strPtr("2024-02-29"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", updated.Date.Format("2006-01-02"))
}

func TestDeleteTransactionThenGetNotFound(t *testing.T) {
	f := newTransactionFixture(t)

	created, err := f.uc.CreateTransaction(context.Background(), f.createInput())
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteTransaction(context.Background(), created.ID))

	_, err = f.uc.GetTransactionByID(context.Background(), created.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Transaction", notFound.Entity)
	assert.Equal(t, created.ID, notFound.ID)

	// Повторное удаление — тоже NotFound
	err = f.uc.DeleteTransaction(context.Background(), created.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestListTransactionsByUnknownUserIsEmpty(t *testing.T) {
	f := newTransactionFixture(t)

	_, err := f.uc.CreateTransaction(context.Background(), f.createInput())
	require.NoError(t, err)

	transactions, err := f.uc.ListTransactionsByUserID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestTransactionEventsPublished(t *testing.T) {
	f := newTransactionFixture(t)

	created, err := f.uc.CreateTransaction(context.Background(), f.createInput())
	require.NoError(t, err)

	_, err = f.uc.UpdateTransaction(context.Background(), created.ID, UpdateTransactionInput{Title: strPtr("Dinner")})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteTransaction(context.Background(), created.ID))

	require.Len(t, f.publisher.events, 3)
	assert.Equal(t, payloads.TransactionEventCreated, f.publisher.events[0].Action)
	assert.Equal(t, payloads.TransactionEventUpdated, f.publisher.events[1].Action)
	assert.Equal(t, payloads.TransactionEventDeleted, f.publisher.events[2].Action)
	assert.Equal(t, created.ID, f.publisher.events[2].TransactionID)
}

func TestGetTransactionSummary(t *testing.T) {
	f := newTransactionFixture(t)

	add := func(amount int64, transactionType domain.TransactionType) {
		in := f.createInput()
		in.AmountInCents = amount
		in.Type = transactionType
		_, err := f.uc.CreateTransaction(context.Background(), in)
		require.NoError(t, err)
	}

	t.Run("empty user yields zero summary", func(t *testing.T) {
		summary, err := f.uc.GetTransactionSummary(context.Background(), 12345)
		require.NoError(t, err)
		assert.Equal(t, &domain.Summary{}, summary)
	})

	t.Run("single expense", func(t *testing.T) {
		add(1200, domain.TransactionTypeExpense)

		summary, err := f.uc.GetTransactionSummary(context.Background(), f.user.ID)
		require.NoError(t, err)
		assert.Equal(t, &domain.Summary{
			TotalIncome:      0,
			TotalExpense:     1200,
			Balance:          -1200,
			TransactionCount: 1,
		}, summary)
	})

	t.Run("mixed incomes and expenses", func(t *testing.T) {
		add(500000, domain.TransactionTypeIncome)
		add(300, domain.TransactionTypeExpense)

		summary, err := f.uc.GetTransactionSummary(context.Background(), f.user.ID)
		require.NoError(t, err)
		assert.Equal(t, &domain.Summary{
			TotalIncome:      500000,
			TotalExpense:     1500,
			Balance:          498500,
			TransactionCount: 3,
		}, summary)
	})
}
