package domain

import (
	"time"
)

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
// Email и Document уникальны на уровне бд (уникальные индексы в миграциях).
type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	Document     string     `json:"document" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password_hash"`
	Birthdate    *time.Time `json:"birthdate,omitempty" gorm:"type:date"`
	Fullname     *string    `json:"fullname,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
