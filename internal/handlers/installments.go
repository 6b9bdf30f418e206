package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"go.uber.org/zap"
)

// InstallmentsHandler обслуживает жизненный цикл плана рассрочки
type InstallmentsHandler struct {
	planService domain.PlanService
	logger      *zap.Logger
}

// NewInstallmentsHandler создает новый InstallmentsHandler
func NewInstallmentsHandler(planService domain.PlanService, logger *zap.Logger) *InstallmentsHandler {
	return &InstallmentsHandler{
		planService: planService,
		logger:      logger,
	}
}

// Checkout оформляет заказ в рассрочку
func (h *InstallmentsHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.planService.Checkout(r.Context(), userID, &req)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, order)
}

// GetOrder возвращает заказ с планом рассрочки
func (h *InstallmentsHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.planService.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// SubmitProof принимает подтверждение перевода по взносу
func (h *InstallmentsHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index, err := trancheIndexParam(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var proof domain.TransactionProof
	if err := json.NewDecoder(r.Body).Decode(&proof); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.planService.SubmitTrancheProof(r.Context(), userID, orderID, index, &proof)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// ConfirmSale подтверждает продажу (продавец)
func (h *InstallmentsHandler) ConfirmSale(w http.ResponseWriter, r *http.Request) {
	h.sellerAction(w, r, h.planService.ConfirmSale)
}

// RejectSale отклоняет первоначальное подтверждение и отменяет заказ
func (h *InstallmentsHandler) RejectSale(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.planService.RejectSale(r.Context(), userID, orderID, body.Reason)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// ValidateTranche принимает подтверждение взноса (продавец)
func (h *InstallmentsHandler) ValidateTranche(w http.ResponseWriter, r *http.Request) {
	h.trancheAction(w, r, h.planService.ValidateTranche)
}

// RejectTranche отклоняет подтверждение взноса (продавец)
func (h *InstallmentsHandler) RejectTranche(w http.ResponseWriter, r *http.Request) {
	h.trancheAction(w, r, h.planService.RejectTranche)
}

func (h *InstallmentsHandler) sellerAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, sellerID, orderID int64) (*domain.Order, error)) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := action(r.Context(), userID, orderID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

func (h *InstallmentsHandler) trancheAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, sellerID, orderID int64, index int) (*domain.Order, error)) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index, err := trancheIndexParam(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := action(r.Context(), userID, orderID, index)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// orderIDParam извлекает идентификатор заказа из пути
func orderIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
}

// trancheIndexParam извлекает индекс взноса из пути
func trancheIndexParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "index"))
}

// writeJSON сериализует ответ
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
