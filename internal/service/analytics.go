package service

import (
	"context"
	"fmt"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
)

// AnalyticsService реализует domain.AnalyticsService
type AnalyticsService struct {
	orderRepo domain.OrderRepository
}

// NewAnalyticsService создает новый AnalyticsService
func NewAnalyticsService(orderRepo domain.OrderRepository) *AnalyticsService {
	return &AnalyticsService{
		orderRepo: orderRepo,
	}
}

// SellerSummary возвращает агрегаты заказов продавца, сгруппированные
// по статусу рассрочки
func (s *AnalyticsService) SellerSummary(ctx context.Context, sellerID int64) ([]*domain.StatusSummary, error) {
	summary, err := s.orderRepo.GetSellerInstallmentSummary(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("analytics service: failed to get summary for seller %d: %w", sellerID, err)
	}

	return summary, nil
}
