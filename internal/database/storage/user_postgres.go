package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/FinanceApp/internal/domain"
	"gorm.io/gorm"
)

// UserStorage реализует интерфейс ports.UserStorage с использованием GORM
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// SaveUser сохраняет пользователя в бд (создание при нулевом ID, иначе upsert).
// Нарушение уникального индекса по email/document транслируется в ConflictError —
// это страховка на случай гонки двух параллельных созданий, прошедших проверку.
func (s *UserStorage) SaveUser(ctx context.Context, user *domain.User) error {
	result := s.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.NewConflict("User with this email or document already exists")
		}
		return fmt.Errorf("ошибка при сохранении пользователя с GORM: %w", result.Error)
	}

	s.logger.Debug("user saved", "user_id", user.ID)
	return nil
}

// GetUserByID получает пользователя по ID, (nil, nil) если не найден
func (s *UserStorage) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по ID из БД: %w", result.Error)
	}
	return &user, nil
}

// GetUserByEmail получает пользователя по email, (nil, nil) если не найден
func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email из БД: %w", result.Error)
	}
	return &user, nil
}

// FindConflictingUser ищет другого пользователя с таким же email или document
func (s *UserStorage) FindConflictingUser(ctx context.Context, email, document string, excludeID int64) (*domain.User, error) {
	query := s.db.WithContext(ctx).Where("email = ? OR document = ?", email, document)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var user domain.User
	result := query.First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при проверке уникальности пользователя: %w", result.Error)
	}
	return &user, nil
}

// ListUsers получает всех пользователей из бд
func (s *UserStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	result := s.db.WithContext(ctx).Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении списка пользователей из БД: %w", result.Error)
	}
	return users, nil
}

// DeleteUser удаляет пользователя по ID
func (s *UserStorage) DeleteUser(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&domain.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка при удалении пользователя из БД: %w", result.Error)
	}

	s.logger.Debug("user deleted", "user_id", id)
	return nil
}
