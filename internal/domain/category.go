package domain

import "time"

// Category представляет категорию расходов/доходов,
// соответствует таблице categories в бд.
// Уникальность имени не требуется.
type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
