package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/repository/cache"
	"go.uber.org/zap"
)

// Базовый скоринг и пороги уровней риска.
// Каждый фактор ограничен по отдельности, чтобы ни один элемент истории
// не мог обнулить или насытить оценку; покупатель без истории получает
// ровно нейтральные 55.
const (
	scoreBase       = 55
	scoreLowRiskMin = 75
	scoreMediumMin  = 50
	eligibilityTTL  = 10 * time.Minute
	cacheOperation  = "eligibility"
)

// EligibilityService реализует domain.EligibilityService
type EligibilityService struct {
	orderRepo domain.OrderRepository
	cache     cache.Cache
	logger    *zap.Logger
}

// NewEligibilityService создает новый EligibilityService.
// Кеш опционален: nil отключает кеширование.
func NewEligibilityService(orderRepo domain.OrderRepository, c cache.Cache, logger *zap.Logger) *EligibilityService {
	return &EligibilityService{
		orderRepo: orderRepo,
		cache:     c,
		logger:    logger,
	}
}

// Score возвращает скоринг покупателя по его истории заказов
func (s *EligibilityService) Score(ctx context.Context, customerID int64) (*domain.EligibilityResult, error) {
	if cached, ok := s.fromCache(ctx, customerID); ok {
		return cached, nil
	}

	history, err := s.orderRepo.GetCustomerHistory(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("eligibility service: failed to get history for customer %d: %w", customerID, err)
	}

	score := ScoreHistory(history)
	result := &domain.EligibilityResult{
		Score:     score,
		RiskLevel: RiskLevelForScore(score),
	}

	s.toCache(ctx, customerID, score)

	return result, nil
}

// fromCache пытается прочитать скоринг из кеша; промах и ошибки равнозначны
func (s *EligibilityService) fromCache(ctx context.Context, customerID int64) (*domain.EligibilityResult, bool) {
	if s.cache == nil {
		return nil, false
	}

	key := s.cache.GenerateKey(cacheOperation, strconv.FormatInt(customerID, 10))
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("eligibility cache read failed", zap.Int64("customer_id", customerID), zap.Error(err))
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	score, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}

	return &domain.EligibilityResult{Score: score, RiskLevel: RiskLevelForScore(score)}, true
}

// toCache сохраняет скоринг best-effort
func (s *EligibilityService) toCache(ctx context.Context, customerID int64, score int) {
	if s.cache == nil {
		return
	}

	key := s.cache.GenerateKey(cacheOperation, strconv.FormatInt(customerID, 10))
	if err := s.cache.Set(ctx, key, strconv.Itoa(score), eligibilityTTL); err != nil {
		s.logger.Warn("eligibility cache write failed", zap.Int64("customer_id", customerID), zap.Error(err))
	}
}

// ScoreHistory считает скоринг по агрегатам истории, результат в [0, 100]
func ScoreHistory(h *domain.CustomerHistory) int {
	var completionRate, cancellationRate float64
	if h.TotalOrders > 0 {
		completionRate = float64(h.DeliveredOrders) / float64(h.TotalOrders)
		cancellationRate = float64(h.CancelledOrders) / float64(h.TotalOrders)
	}

	score := scoreBase
	score += int(math.Round(completionRate * 30))

	installmentBonus := h.CompletedInstallments * 2
	if installmentBonus > 10 {
		installmentBonus = 10
	}
	score += installmentBonus

	score -= int(math.Round(cancellationRate * 25))

	overduePenalty := h.OverdueInstallments * 4
	if overduePenalty > 20 {
		overduePenalty = 20
	}
	score -= overduePenalty

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}

// RiskLevelForScore переводит скоринг в уровень риска
func RiskLevelForScore(score int) domain.RiskLevel {
	switch {
	case score >= scoreLowRiskMin:
		return domain.RiskLevelLow
	case score >= scoreMediumMin:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelHigh
	}
}
