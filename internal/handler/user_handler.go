package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/FinanceApp/internal/usecase"
)

// UserHandler — обработчик HTTP-запросов для работы с пользователями.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: uc, logger: logger}
}

// CreateUser — регистрирует нового пользователя.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warn("malformed request body", "endpoint", "CreateUser", "error", err)
		respondWithError(w, http.StatusBadRequest, "malformed JSON body", h.logger)
		return
	}

	if fieldErrors := validateCreateUserRequest(req); len(fieldErrors) > 0 {
		respondWithValidationErrors(w, fieldErrors, h.logger)
		return
	}

	user, err := h.userUseCase.CreateUser(r.Context(), usecase.CreateUserInput{
		Email:     req.Email,
		Document:  req.Document,
		Password:  req.Password,
		Birthdate: req.Birthdate,
		Fullname:  req.Fullname,
	})
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, newUserView(user), h.logger)
}

// ListUsers — возвращает всех пользователей.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUseCase.ListUsers(r.Context())
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newUserViews(users), h.logger)
}

// GetUserByID — возвращает пользователя по ID.
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	user, err := h.userUseCase.GetUserByID(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newUserView(user), h.logger)
}

// UpdateUser — частично обновляет пользователя.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	var req UpdateUserRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warn("malformed request body", "endpoint", "UpdateUser", "error", err)
		respondWithError(w, http.StatusBadRequest, "malformed JSON body", h.logger)
		return
	}

	if fieldErrors := validateUpdateUserRequest(req); len(fieldErrors) > 0 {
		respondWithValidationErrors(w, fieldErrors, h.logger)
		return
	}

	user, err := h.userUseCase.UpdateUser(r.Context(), id, usecase.UpdateUserInput{
		Email:     req.Email,
		Document:  req.Document,
		Password:  req.Password,
		Birthdate: req.Birthdate,
		Fullname:  req.Fullname,
	})
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newUserView(user), h.logger)
}

// DeleteUser — удаляет пользователя.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if err := h.userUseCase.DeleteUser(r.Context(), id); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
