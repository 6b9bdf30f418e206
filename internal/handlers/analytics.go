package handlers

import (
	"net/http"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"go.uber.org/zap"
)

// AnalyticsHandler обслуживает скоринг и аналитику рассрочек
type AnalyticsHandler struct {
	eligibility domain.EligibilityService
	analytics   domain.AnalyticsService
	logger      *zap.Logger
}

// NewAnalyticsHandler создает новый AnalyticsHandler
func NewAnalyticsHandler(eligibility domain.EligibilityService, analytics domain.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		eligibility: eligibility,
		analytics:   analytics,
		logger:      logger,
	}
}

// Eligibility возвращает скоринговую оценку текущего пользователя
func (h *AnalyticsHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.eligibility.Score(r.Context(), userID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// SellerSummary возвращает агрегаты рассрочек продавца по статусам
func (h *AnalyticsHandler) SellerSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.analytics.SellerSummary(r.Context(), userID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, summary)
}
