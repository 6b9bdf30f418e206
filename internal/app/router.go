package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/handlers"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))

		// Покупатель
		r.Post("/api/installments", deps.handlers.installments.Checkout)
		r.Get("/api/installments/eligibility", deps.handlers.analytics.Eligibility)
		r.Get("/api/installments/{orderID}", deps.handlers.installments.GetOrder)
		r.Post("/api/installments/{orderID}/tranches/{index}/proof", deps.handlers.installments.SubmitProof)

		// Продавец
		r.Post("/api/installments/{orderID}/confirm", deps.handlers.installments.ConfirmSale)
		r.Post("/api/installments/{orderID}/reject", deps.handlers.installments.RejectSale)
		r.Post("/api/installments/{orderID}/tranches/{index}/validate", deps.handlers.installments.ValidateTranche)
		r.Post("/api/installments/{orderID}/tranches/{index}/reject", deps.handlers.installments.RejectTranche)
		r.Get("/api/seller/installments/summary", deps.handlers.analytics.SellerSummary)
	})
}
