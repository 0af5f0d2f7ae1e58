package handler

import (
	"time"

	"github.com/GoArmGo/FinanceApp/internal/domain"
	"github.com/GoArmGo/FinanceApp/internal/usecase"
)

// dateLayout — формат календарных дат во внешнем API
const dateLayout = "2006-01-02"

// CreateUserRequest — входной формат регистрации пользователя
type CreateUserRequest struct {
	Email     string  `json:"email"`
	Document  string  `json:"document"`
	Password  string  `json:"password"`
	Birthdate *string `json:"birthdate,omitempty"`
	Fullname  *string `json:"fullname,omitempty"`
}

// UpdateUserRequest — частичное обновление, все поля опциональны
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty"`
	Document  *string `json:"document,omitempty"`
	Password  *string `json:"password,omitempty"`
	Birthdate *string `json:"birthdate,omitempty"`
	Fullname  *string `json:"fullname,omitempty"`
}

// CreateCategoryRequest — входной формат создания категории
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest — частичное обновление категории
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty"`
}

// CreateTransactionRequest — входной формат создания транзакции
type CreateTransactionRequest struct {
	Title         string  `json:"title"`
	CategoryID    int64   `json:"categoryId"`
	Description   *string `json:"description,omitempty"`
	AmountInCents int64   `json:"amountInCents"`
	UserID        int64   `json:"userId"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
}

// UpdateTransactionRequest — частичное обновление транзакции
type UpdateTransactionRequest struct {
	Title         *string `json:"title,omitempty"`
	CategoryID    *int64  `json:"categoryId,omitempty"`
	Description   *string `json:"description,omitempty"`
	AmountInCents *int64  `json:"amountInCents,omitempty"`
	UserID        *int64  `json:"userId,omitempty"`
	Date          *string `json:"date,omitempty"`
	Type          *string `json:"type,omitempty"`
}

// UserView — внешний вид пользователя, пароль наружу не отдается никогда
type UserView struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Birthdate *string `json:"birthdate,omitempty"`
	Fullname  *string `json:"fullname,omitempty"`
	Document  string  `json:"document"`
}

// CategoryView — внешний вид категории
type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TransactionView — внешний вид транзакции.
// Связанные сущности сплющены до внешних ключей, полные объекты не встраиваются.
type TransactionView struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	CategoryID    int64     `json:"categoryId"`
	Description   *string   `json:"description,omitempty"`
	AmountInCents int64     `json:"amountInCents"`
	UserID        int64     `json:"userId"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Type          string    `json:"type"`
}

// SummaryView — внешний вид сводки по транзакциям пользователя
type SummaryView struct {
	TotalIncome      int64 `json:"totalIncome"`
	TotalExpense     int64 `json:"totalExpense"`
	Balance          int64 `json:"balance"`
	TransactionCount int64 `json:"transactionCount"`
}

func newUserView(u *domain.User) UserView {
	view := UserView{
		ID:       u.ID,
		Email:    u.Email,
		Fullname: u.Fullname,
		Document: u.Document,
	}
	if u.Birthdate != nil {
		birthdate := u.Birthdate.Format(dateLayout)
		view.Birthdate = &birthdate
	}
	return view
}

func newUserViews(users []domain.User) []UserView {
	views := make([]UserView, len(users))
	for i := range users {
		views[i] = newUserView(&users[i])
	}
	return views
}

func newCategoryView(c *domain.Category) CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name}
}

func newCategoryViews(categories []domain.Category) []CategoryView {
	views := make([]CategoryView, len(categories))
	for i := range categories {
		views[i] = newCategoryView(&categories[i])
	}
	return views
}

func newTransactionView(t *domain.Transaction) TransactionView {
	return TransactionView{
		ID:            t.ID,
		Title:         t.Title,
		CategoryID:    t.CategoryID,
		Description:   t.Description,
		AmountInCents: t.AmountInCents,
		UserID:        t.UserID,
		Date:          t.Date.Format(dateLayout),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		Type:          string(t.Type),
	}
}

func newTransactionViews(transactions []domain.Transaction) []TransactionView {
	views := make([]TransactionView, len(transactions))
	for i := range transactions {
		views[i] = newTransactionView(&transactions[i])
	}
	return views
}

func newSummaryView(s *domain.Summary) SummaryView {
	return SummaryView{
		TotalIncome:      s.TotalIncome,
		TotalExpense:     s.TotalExpense,
		Balance:          s.Balance,
		TransactionCount: s.TransactionCount,
	}
}

// toCreateTransactionInput переводит проверенный запрос во входные данные ядра
func toCreateTransactionInput(req CreateTransactionRequest) usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		Title:         req.Title,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		AmountInCents: req.AmountInCents,
		UserID:        req.UserID,
		Date:          req.Date,
		Type:          domain.TransactionType(req.Type),
	}
}

func toUpdateTransactionInput(req UpdateTransactionRequest) usecase.UpdateTransactionInput {
	in := usecase.UpdateTransactionInput{
		Title:         req.Title,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		AmountInCents: req.AmountInCents,
		UserID:        req.UserID,
		Date:          req.Date,
	}
	if req.Type != nil {
		transactionType := domain.TransactionType(*req.Type)
		in.Type = &transactionType
	}
	return in
}
