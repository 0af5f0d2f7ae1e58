package domain

import "time"

// TransactionType — тип транзакции: доход или расход.
// Знак суммы всегда положительный, направление задаётся типом.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid проверяет, что значение входит в перечисление
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction представляет финансовую операцию пользователя,
// соответствует таблице transactions в бд.
// Ссылается ровно на одного User и одну Category (ManyToOne),
// связанные сущности подгружаются через Preload при чтении.
type Transaction struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	Title         string          `json:"title"`
	Description   *string         `json:"description,omitempty"`
	AmountInCents int64           `json:"amount_in_cents"`
	Date          time.Time       `json:"date" gorm:"type:date"`
	Type          TransactionType `json:"type"`
	UserID        int64           `json:"user_id"`
	CategoryID    int64           `json:"category_id"`
	User          User            `json:"-" gorm:"foreignKey:UserID"`
	Category      Category        `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Summary — агрегат по транзакциям одного пользователя.
// Все суммы в центах, арифметика только целочисленная.
type Summary struct {
	TotalIncome      int64 `json:"total_income"`
	TotalExpense     int64 `json:"total_expense"`
	Balance          int64 `json:"balance"`
	TransactionCount int64 `json:"transaction_count"`
}
