package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoArmGo/FinanceApp/internal/config"
	"github.com/GoArmGo/FinanceApp/internal/handler"
	"github.com/GoArmGo/FinanceApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает chi-роутер со всеми маршрутами приложения.
// Вынесен отдельно от runServer, чтобы тесты могли ходить по реальным маршрутам.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	userUseCase usecase.UserUseCase,
	categoryUseCase usecase.CategoryUseCase,
	transactionUseCase usecase.TransactionUseCase,
) *chi.Mux {
	userHandler := handler.NewUserHandler(userUseCase, logger)
	categoryHandler := handler.NewCategoryHandler(categoryUseCase, logger)
	transactionHandler := handler.NewTransactionHandler(transactionUseCase, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", handler.HealthHandler(logger))

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{id}", userHandler.GetUserByID)
		r.Patch("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Post("/", categoryHandler.CreateCategory)
		r.Get("/", categoryHandler.ListCategories)
		r.Get("/{id}", categoryHandler.GetCategoryByID)
		r.Patch("/{id}", categoryHandler.UpdateCategory)
		r.Delete("/{id}", categoryHandler.DeleteCategory)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", transactionHandler.CreateTransaction)
		r.Get("/", transactionHandler.ListTransactions)
		// summary раньше {id}, иначе chi отдаст запрос обработчику по ID
		r.Get("/summary/{userId}", transactionHandler.GetTransactionSummary)
		r.Get("/{id}", transactionHandler.GetTransactionByID)
		r.Patch("/{id}", transactionHandler.UpdateTransaction)
		r.Delete("/{id}", transactionHandler.DeleteTransaction)
	})

	return r
}

// runServer запускает HTTP сервер с graceful shutdown
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	userUseCase usecase.UserUseCase,
	categoryUseCase usecase.CategoryUseCase,
	transactionUseCase usecase.TransactionUseCase,
) error {
	r := NewRouter(cfg, logger, userUseCase, categoryUseCase, transactionUseCase)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-quit:
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
