package handler

import (
	"net/mail"
	"time"

	"github.com/GoArmGo/FinanceApp/internal/domain"
)

// FieldError описывает одну ошибку валидации входного запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// minPasswordLength — минимальная длина пароля пользователя
const minPasswordLength = 6

// Валидация запросов живёт здесь, на границе HTTP: в ядро уходят
// только структурно корректные данные. Каждая функция — чистая,
// возвращает полный список ошибок по полям.

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func validDate(value string) bool {
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

func validateCreateUserRequest(req CreateUserRequest) []FieldError {
	var errs []FieldError
	if !validEmail(req.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if req.Document == "" {
		errs = append(errs, FieldError{Field: "document", Message: "must not be empty"})
	}
	if len(req.Password) < minPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 6 characters long"})
	}
	if req.Birthdate != nil && !validDate(*req.Birthdate) {
		errs = append(errs, FieldError{Field: "birthdate", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	return errs
}

func validateUpdateUserRequest(req UpdateUserRequest) []FieldError {
	var errs []FieldError
	if req.Email != nil && !validEmail(*req.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if req.Document != nil && *req.Document == "" {
		errs = append(errs, FieldError{Field: "document", Message: "must not be empty"})
	}
	if req.Password != nil && len(*req.Password) < minPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 6 characters long"})
	}
	if req.Birthdate != nil && !validDate(*req.Birthdate) {
		errs = append(errs, FieldError{Field: "birthdate", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	return errs
}

func validateCreateCategoryRequest(req CreateCategoryRequest) []FieldError {
	var errs []FieldError
	if req.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "must not be empty"})
	}
	return errs
}

func validateUpdateCategoryRequest(req UpdateCategoryRequest) []FieldError {
	var errs []FieldError
	if req.Name != nil && *req.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "must not be empty"})
	}
	return errs
}

func validateCreateTransactionRequest(req CreateTransactionRequest) []FieldError {
	var errs []FieldError
	if req.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "must not be empty"})
	}
	if req.CategoryID < 1 {
		errs = append(errs, FieldError{Field: "categoryId", Message: "must be a positive integer"})
	}
	if req.UserID < 1 {
		errs = append(errs, FieldError{Field: "userId", Message: "must be a positive integer"})
	}
	if req.AmountInCents < 1 {
		errs = append(errs, FieldError{Field: "amountInCents", Message: "must be at least 1"})
	}
	if !validDate(req.Date) {
		errs = append(errs, FieldError{Field: "date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if !domain.TransactionType(req.Type).Valid() {
		errs = append(errs, FieldError{Field: "type", Message: "must be either 'income' or 'expense'"})
	}
	return errs
}

func validateUpdateTransactionRequest(req UpdateTransactionRequest) []FieldError {
	var errs []FieldError
	if req.Title != nil && *req.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "must not be empty"})
	}
	if req.CategoryID != nil && *req.CategoryID < 1 {
		errs = append(errs, FieldError{Field: "categoryId", Message: "must be a positive integer"})
	}
	if req.UserID != nil && *req.UserID < 1 {
		errs = append(errs, FieldError{Field: "userId", Message: "must be a positive integer"})
	}
	if req.AmountInCents != nil && *req.AmountInCents < 1 {
		errs = append(errs, FieldError{Field: "amountInCents", Message: "must be at least 1"})
	}
	if req.Date != nil && !validDate(*req.Date) {
		errs = append(errs, FieldError{Field: "date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if req.Type != nil && !domain.TransactionType(*req.Type).Valid() {
		errs = append(errs, FieldError{Field: "type", Message: "must be either 'income' or 'expense'"})
	}
	return errs
}
