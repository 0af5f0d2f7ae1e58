package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/FinanceApp/internal/core/ports"
	"github.com/GoArmGo/FinanceApp/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost — стоимость хеширования пароля
const bcryptCost = 10

const conflictUserMessage = "User with this email or document already exists"

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage        ports.UserStorage
	transactionStorage ports.TransactionStorage
	logger             *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase.
// TransactionStorage нужен для запрета удаления пользователя с транзакциями.
func NewUserUseCase(
	userStorage ports.UserStorage,
	transactionStorage ports.TransactionStorage,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{
		userStorage:        userStorage,
		transactionStorage: transactionStorage,
		logger:             logger,
	}
}

// CreateUser регистрирует нового пользователя.
// Проверка уникальности email/document выполняется до вставки; если два
// параллельных создания проскочат её одновременно, конфликт поймает
// уникальный индекс в бд и хранилище вернёт тот же ConflictError.
func (uc *userUseCase) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	existing, err := uc.userStorage.FindConflictingUser(ctx, in.Email, in.Document, 0)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при проверке уникальности пользователя: %w", err)
	}
	if existing != nil {
		return nil, domain.NewConflict(conflictUserMessage)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при хешировании пароля: %w", err)
	}

	user := &domain.User{
		Email:        in.Email,
		Document:     in.Document,
		PasswordHash: string(hash),
		Fullname:     in.Fullname,
	}

	if in.Birthdate != nil {
		birthdate, err := time.Parse(isoDateLayout, *in.Birthdate)
		if err != nil {
			return nil, fmt.Errorf("usecase: некорректная дата рождения %q: %w", *in.Birthdate, err)
		}
		user.Birthdate = &birthdate
	}

	if err := uc.userStorage.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении пользователя: %w", err)
	}

	uc.logger.Info("user created", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// GetUserByID получает пользователя по ID
func (uc *userUseCase) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя по ID %d: %w", id, err)
	}
	if user == nil {
		return nil, domain.NewNotFound("User", id)
	}
	return user, nil
}

// FindUserByEmail получает пользователя по email, nil если не найден
func (uc *userUseCase) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя по email: %w", err)
	}
	return user, nil
}

// ListUsers получает всех пользователей
func (uc *userUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.userStorage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении списка пользователей: %w", err)
	}
	return users, nil
}

// UpdateUser меняет только переданные поля пользователя.
// Вместо мутации на месте собирается новая копия сущности с переопределёнными
// полями, и уже она отдается хранилищу на запись.
func (uc *userUseCase) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя по ID %d: %w", id, err)
	}
	if user == nil {
		return nil, domain.NewNotFound("User", id)
	}

	updated := *user

	if in.Email != nil {
		updated.Email = *in.Email
	}
	if in.Document != nil {
		updated.Document = *in.Document
	}

	// Перепроверяем уникальность только при смене email или document,
	// исключая самого пользователя
	if in.Email != nil || in.Document != nil {
		existing, err := uc.userStorage.FindConflictingUser(ctx, updated.Email, updated.Document, id)
		if err != nil {
			return nil, fmt.Errorf("usecase: ошибка при проверке уникальности пользователя: %w", err)
		}
		if existing != nil {
			return nil, domain.NewConflict(conflictUserMessage)
		}
	}

	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("usecase: ошибка при хешировании пароля: %w", err)
		}
		updated.PasswordHash = string(hash)
	}

	if in.Birthdate != nil {
		birthdate, err := time.Parse(isoDateLayout, *in.Birthdate)
		if err != nil {
			return nil, fmt.Errorf("usecase: некорректная дата рождения %q: %w", *in.Birthdate, err)
		}
		updated.Birthdate = &birthdate
	}

	if in.Fullname != nil {
		updated.Fullname = in.Fullname
	}

	if err := uc.userStorage.SaveUser(ctx, &updated); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении пользователя: %w", err)
	}

	uc.logger.Info("user updated", "user_id", updated.ID)
	return &updated, nil
}

// DeleteUser удаляет пользователя, если на него не ссылаются транзакции
func (uc *userUseCase) DeleteUser(ctx context.Context, id int64) error {
	user, err := uc.userStorage.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: ошибка при получении пользователя по ID %d: %w", id, err)
	}
	if user == nil {
		return domain.NewNotFound("User", id)
	}

	count, err := uc.transactionStorage.CountTransactionsByUserID(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: ошибка при подсчёте транзакций пользователя %d: %w", id, err)
	}
	if count > 0 {
		return domain.NewConflict(fmt.Sprintf("User with ID %d still has %d transactions and cannot be deleted", id, count))
	}

	if err := uc.userStorage.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("usecase: ошибка при удалении пользователя %d: %w", id, err)
	}

	uc.logger.Info("user deleted", "user_id", id)
	return nil
}
