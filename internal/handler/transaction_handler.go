package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/FinanceApp/internal/usecase"
)

// TransactionHandler — обработчик HTTP-запросов для работы с транзакциями.
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             *slog.Logger
}

// NewTransactionHandler создаёт новый экземпляр TransactionHandler.
func NewTransactionHandler(uc usecase.TransactionUseCase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{transactionUseCase: uc, logger: logger}
}

// CreateTransaction — создает транзакцию после проверки пользователя и категории.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warn("malformed request body", "endpoint", "CreateTransaction", "error", err)
		respondWithError(w, http.StatusBadRequest, "malformed JSON body", h.logger)
		return
	}

	if fieldErrors := validateCreateTransactionRequest(req); len(fieldErrors) > 0 {
		respondWithValidationErrors(w, fieldErrors, h.logger)
		return
	}

	transaction, err := h.transactionUseCase.CreateTransaction(r.Context(), toCreateTransactionInput(req))
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, newTransactionView(transaction), h.logger)
}

// ListTransactions — возвращает все транзакции либо, при наличии
// query-параметра userId, транзакции одного пользователя.
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	if userIDStr := r.URL.Query().Get("userId"); userIDStr != "" {
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID < 1 {
			respondWithError(w, http.StatusBadRequest, "userId must be a positive integer", h.logger)
			return
		}

		transactions, err := h.transactionUseCase.ListTransactionsByUserID(r.Context(), userID)
		if err != nil {
			respondWithDomainError(w, err, h.logger)
			return
		}

		respondWithJSON(w, http.StatusOK, newTransactionViews(transactions), h.logger)
		return
	}

	transactions, err := h.transactionUseCase.ListTransactions(r.Context())
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newTransactionViews(transactions), h.logger)
}

// GetTransactionByID — возвращает транзакцию по ID.
func (h *TransactionHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	transaction, err := h.transactionUseCase.GetTransactionByID(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newTransactionView(transaction), h.logger)
}

// GetTransactionSummary — возвращает сводку по транзакциям пользователя.
func (h *TransactionHandler) GetTransactionSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	summary, err := h.transactionUseCase.GetTransactionSummary(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newSummaryView(summary), h.logger)
}

// UpdateTransaction — частично обновляет транзакцию.
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	var req UpdateTransactionRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warn("malformed request body", "endpoint", "UpdateTransaction", "error", err)
		respondWithError(w, http.StatusBadRequest, "malformed JSON body", h.logger)
		return
	}

	if fieldErrors := validateUpdateTransactionRequest(req); len(fieldErrors) > 0 {
		respondWithValidationErrors(w, fieldErrors, h.logger)
		return
	}

	transaction, err := h.transactionUseCase.UpdateTransaction(r.Context(), id, toUpdateTransactionInput(req))
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, newTransactionView(transaction), h.logger)
}

// DeleteTransaction — удаляет транзакцию.
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if err := h.transactionUseCase.DeleteTransaction(r.Context(), id); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
