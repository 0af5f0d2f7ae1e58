package domain

import "fmt"

// NotFoundError — запрошенная сущность отсутствует в бд.
// Entity хранит вид сущности (User, Category, Transaction), ID — её идентификатор,
// чтобы сообщение об ошибке называло конкретного виновника.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// NewNotFound создает NotFoundError для сущности с указанным ID
func NewNotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError — нарушение ограничения уникальности
// (email или document пользователя уже заняты) либо запрет удаления
// сущности, на которую ещё ссылаются транзакции.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict создает ConflictError с готовым сообщением
func NewConflict(message string) error {
	return &ConflictError{Message: message}
}
