package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/FinanceApp/internal/domain"
	"github.com/go-chi/chi/v5"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondWithValidationErrors — отправляет 400 со списком ошибок по полям
func respondWithValidationErrors(w http.ResponseWriter, fieldErrors []FieldError, logger *slog.Logger) {
	respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": fieldErrors,
	}, logger)
}

// respondWithDomainError — транслирует типизированные ошибки ядра в HTTP-статусы:
// NotFoundError → 404, ConflictError → 409, остальное → 500.
func respondWithDomainError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		respondWithError(w, http.StatusNotFound, notFound.Error(), logger)
		return
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		respondWithError(w, http.StatusConflict, conflict.Error(), logger)
		return
	}

	logger.Error("unexpected error while handling request", "error", err)
	respondWithError(w, http.StatusInternalServerError, "internal server error", logger)
}

// parseIDParam — достаёт положительный целочисленный id из пути
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// decodeJSONBody — разбирает тело запроса в переданную структуру
func decodeJSONBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// HealthHandler отвечает 200, если процесс жив
func HealthHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	}
}
