package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/FinanceApp/internal/usecase"
)

// CategoryHandler — обработчик HTTP-запросов для работы с категориями.
type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *slog.Logger
}

// NewCategoryHandler создаёт новый экземпляр CategoryHandler.
func NewCategoryHandler(uc usecase.CategoryUseCase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUseCase: uc, logger: logger}
}

// CreateCategory — создает новую категорию.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warn("malformed request body", "endpoint", "CreateCategory", "error", err)
		respondWithError(w, http.StatusBadRequest, "malformed JSON body", h.logger)
		return
	}

	if fieldErrors := validateCreateCategoryRequest(req); len(fieldErrors) > 0 {
		respondWithValidationErrors(w, fieldErrors, h.logger)
		return
	}

	category, err := h.categoryUseCase.CreateCategory(r.Context(), usecase.CreateCategoryInput{Name: req.Name})
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, newCategoryView(category), h.logger)
}

// ListCategories — возвращает все категории.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUseCase.ListCategories(r.Context())
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newCategoryViews(categories), h.logger)
}

// GetCategoryByID — возвращает категорию по ID.
func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	category, err := h.categoryUseCase.GetCategoryByID(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newCategoryView(category), h.logger)
}

// UpdateCategory — частично обновляет категорию.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	var req UpdateCategoryRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warn("malformed request body", "endpoint", "UpdateCategory", "error", err)
		respondWithError(w, http.StatusBadRequest, "malformed JSON body", h.logger)
		return
	}

	if fieldErrors := validateUpdateCategoryRequest(req); len(fieldErrors) > 0 {
		respondWithValidationErrors(w, fieldErrors, h.logger)
		return
	}

	category, err := h.categoryUseCase.UpdateCategory(r.Context(), id, usecase.UpdateCategoryInput{Name: req.Name})
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newCategoryView(category), h.logger)
}

// DeleteCategory — удаляет категорию.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if err := h.categoryUseCase.DeleteCategory(r.Context(), id); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
