package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/utils/money"
	"go.uber.org/zap"
)

// PlanService реализует domain.PlanService: оформление рассрочки,
// подачу подтверждений, подтверждение продажи и валидацию взносов.
// Все операции — короткие read-modify-write одного агрегата; сохранение
// идет через conditional update по версии.
type PlanService struct {
	orderRepo    domain.OrderRepository
	productRepo  domain.ProductRepository
	cartRepo     domain.CartRepository
	restrictions domain.RestrictionChecker
	eligibility  domain.EligibilityService
	notifier     domain.Notifier
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewPlanService создает новый PlanService
func NewPlanService(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	cartRepo domain.CartRepository,
	restrictions domain.RestrictionChecker,
	eligibility domain.EligibilityService,
	notifier domain.Notifier,
	logger *zap.Logger,
) *PlanService {
	return &PlanService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		cartRepo:     cartRepo,
		restrictions: restrictions,
		eligibility:  eligibility,
		notifier:     notifier,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Checkout оформляет заказ в рассрочку.
// Все предусловия проверяются до каких-либо мутаций; при любом отказе
// побочных эффектов нет.
func (s *PlanService) Checkout(ctx context.Context, customerID int64, req *domain.CheckoutRequest) (*domain.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if !product.InstallmentEnabled {
		return nil, domain.ErrInstallmentNotAvailable
	}
	// Включенной рассрочки недостаточно: текущий момент обязан попадать
	// в окно предложения
	if product.InstallmentStartDate != nil && now.Before(*product.InstallmentStartDate) {
		return nil, domain.ErrInstallmentWindowClosed
	}
	if product.InstallmentEndDate != nil && now.After(*product.InstallmentEndDate) {
		return nil, domain.ErrInstallmentWindowClosed
	}

	restricted, err := s.restrictions.IsRestricted(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("plan service: restriction check failed for customer %d: %w", customerID, err)
	}
	if restricted {
		return nil, domain.ErrCustomerRestricted
	}

	total := money.Round2(product.Price * float64(req.Quantity))
	if money.Cents(req.FirstPayment) < money.Cents(product.InstallmentMinAmount) {
		return nil, domain.ErrFirstPaymentBelowMinimum
	}
	if money.Cents(req.FirstPayment) > money.Cents(total) {
		return nil, domain.ErrFirstPaymentExceedsTotal
	}
	// Непокрытый первым взносом остаток обязан получить график:
	// без положительной длительности он не погашается никогда
	if product.InstallmentDurationDays <= 0 && money.Cents(req.FirstPayment) < money.Cents(total) {
		return nil, domain.ErrInstallmentMisconfigured
	}
	if !money.Equal(req.Proof.Amount, req.FirstPayment) {
		return nil, domain.ErrProofAmountMismatch
	}

	if product.InstallmentRequireGuarantor {
		if req.Guarantor == nil {
			return nil, domain.ErrGuarantorRequired
		}
		if err := s.validate.Struct(req.Guarantor); err != nil {
			return nil, domain.ErrGuarantorRequired
		}
	}

	eligibilityResult, err := s.eligibility.Score(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("plan service: failed to score customer %d: %w", customerID, err)
	}

	// Первый взнос — синтетическая запись об уже заявленном переводе,
	// дальше идет сгенерированный график на остаток
	schedule := make([]domain.Tranche, 0, 1)
	schedule = append(schedule, domain.Tranche{
		DueDate:          now,
		Amount:           req.FirstPayment,
		Status:           domain.TrancheStatusProofUploaded,
		TransactionProof: req.Proof,
	})
	remaining := money.FromCents(money.Cents(total) - money.Cents(req.FirstPayment))
	schedule = append(schedule, GenerateSchedule(remaining, product.InstallmentDurationDays, now)...)

	plan := &domain.InstallmentPlan{
		TotalAmount:      total,
		AmountPaid:       0,
		RemainingAmount:  total,
		Schedule:         schedule,
		EligibilityScore: eligibilityResult.Score,
		RiskLevel:        eligibilityResult.RiskLevel,
		Guarantor:        req.Guarantor,
	}
	recomputeAggregates(plan)

	order := &domain.Order{
		CustomerID: customerID,
		SellerID:   product.SellerID,
		Items: []domain.OrderItem{{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  req.Quantity,
			ShopID:    product.SellerID,
		}},
		Status:          domain.OrderStatusPendingInstallment,
		TotalAmount:     total,
		PaidAmount:      0,
		RemainingAmount: total,
		Plan:            plan,
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("plan service: failed to create installment order: %w", err)
	}

	// Удаление из корзины и уведомления — best effort, заказ уже создан
	if err := s.cartRepo.RemoveItem(ctx, customerID, product.ID); err != nil {
		s.logger.Warn("failed to remove purchased item from cart",
			zap.Int64("customer_id", customerID),
			zap.Int64("product_id", product.ID),
			zap.Error(err),
		)
	}

	s.notifier.Notify(ctx, created.SellerID, customerID, domain.NotificationSaleConfirmationRequired,
		map[string]any{"orderId": created.ID})
	s.notifier.Notify(ctx, customerID, customerID, domain.NotificationOrderCreated,
		map[string]any{"orderId": created.ID})

	return created, nil
}

// GetOrder возвращает заказ покупателю или обслуживающему продавцу
func (s *PlanService) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != userID && order.SellerID != userID {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}

// ConfirmSale подтверждает продажу: продавец признает первоначальный платеж.
// Первый взнос закрывается, заказ переходит в installment_active.
func (s *PlanService) ConfirmSale(ctx context.Context, sellerID, orderID int64) (*domain.Order, error) {
	order, plan, err := s.sellerOrder(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusPendingInstallment {
		return nil, domain.ErrInvalidOrderState
	}

	now := time.Now()
	plan.SaleConfirmedAt = &now
	plan.SaleConfirmedBy = &sellerID

	first := &plan.Schedule[0]
	if err := domain.TransitionTranche(first, domain.TrancheStatusPaid); err != nil {
		return nil, err
	}
	first.ValidatedBy = &sellerID
	first.ValidatedAt = &now
	plan.AmountPaid = money.FromCents(money.Cents(plan.AmountPaid) + money.Cents(first.Amount))

	syncTotals(order, plan)
	recomputeAggregates(plan)
	if err := domain.TransitionOrder(order, domain.OrderStatusInstallmentActive); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("plan service: failed to confirm sale for order %d: %w", orderID, err)
	}

	s.notifier.Notify(ctx, order.CustomerID, sellerID, domain.NotificationSaleConfirmed,
		map[string]any{"orderId": order.ID})

	return order, nil
}

// RejectSale отклоняет первоначальное подтверждение: заказ отменяется.
// Отмена возможна только из pending_installment и терминальна.
func (s *PlanService) RejectSale(ctx context.Context, sellerID, orderID int64, reason string) (*domain.Order, error) {
	order, plan, err := s.sellerOrder(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}

	// Таблица переходов допускает отмену только из pending_installment
	if err := domain.TransitionOrder(order, domain.OrderStatusCancelled); err != nil {
		return nil, err
	}
	plan.CancelReason = reason

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("plan service: failed to reject sale for order %d: %w", orderID, err)
	}

	s.notifier.Notify(ctx, order.CustomerID, sellerID, domain.NotificationOrderCancelled,
		map[string]any{"orderId": order.ID, "reason": reason})

	return order, nil
}

// SubmitTrancheProof принимает подтверждение перевода по взносу.
// Последовательный барьер: все предыдущие взносы должны быть paid или waived,
// поэтому на проверке продавца одновременно находится не более одного взноса.
func (s *PlanService) SubmitTrancheProof(ctx context.Context, customerID, orderID int64, index int, proof *domain.TransactionProof) (*domain.Order, error) {
	if err := s.validate.Struct(proof); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domain.ErrNotOrderCustomer
	}
	plan := order.Plan
	if plan == nil {
		return nil, domain.ErrInvalidOrderState
	}
	if !plan.SaleConfirmed() {
		return nil, domain.ErrSaleNotConfirmed
	}
	if index < 0 || index >= len(plan.Schedule) {
		return nil, domain.ErrTrancheNotFound
	}

	// Переход применяется к копии агрегата в памяти: при отказе ниже
	// заказ не сохраняется и не возвращается
	tranche := &plan.Schedule[index]
	if err := domain.TransitionTranche(tranche, domain.TrancheStatusProofUploaded); err != nil {
		return nil, err
	}
	for j := 0; j < index; j++ {
		if !plan.Schedule[j].Resolved() {
			return nil, domain.ErrEarlierTrancheUnresolved
		}
	}
	if !money.Equal(proof.Amount, tranche.Amount) {
		return nil, domain.ErrProofAmountMismatch
	}

	tranche.TransactionProof = proof
	recomputeAggregates(plan)

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("plan service: failed to submit proof for order %d tranche %d: %w", orderID, index, err)
	}

	s.notifier.Notify(ctx, order.SellerID, customerID, domain.NotificationProofSubmitted,
		map[string]any{"orderId": order.ID, "tranche": index})

	return order, nil
}

// RejectTranche отклоняет загруженное подтверждение: взнос откатывается
// в pending, подтверждение очищается
func (s *PlanService) RejectTranche(ctx context.Context, sellerID, orderID int64, index int) (*domain.Order, error) {
	order, plan, err := s.sellerOrder(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusPendingInstallment {
		// Первоначальное подтверждение отклоняется через RejectSale
		return nil, domain.ErrInvalidOrderState
	}
	if index < 0 || index >= len(plan.Schedule) {
		return nil, domain.ErrTrancheNotFound
	}

	tranche := &plan.Schedule[index]
	if err := domain.TransitionTranche(tranche, domain.TrancheStatusPending); err != nil {
		return nil, err
	}
	tranche.TransactionProof = nil
	recomputeAggregates(plan)

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("plan service: failed to reject proof for order %d tranche %d: %w", orderID, index, err)
	}

	s.notifier.Notify(ctx, order.CustomerID, sellerID, domain.NotificationProofRejected,
		map[string]any{"orderId": order.ID, "tranche": index})

	return order, nil
}

// ValidateTranche принимает подтверждение: взнос закрывается, при просрочке
// начисляется пеня. Просрочка определяется на момент валидации, не подачи.
// Пеня увеличивает amountPaid и totalPenaltyAccrued, но не totalAmount.
func (s *PlanService) ValidateTranche(ctx context.Context, sellerID, orderID int64, index int) (*domain.Order, error) {
	order, plan, err := s.sellerOrder(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusPendingInstallment {
		return nil, domain.ErrInvalidOrderState
	}
	if index < 0 || index >= len(plan.Schedule) {
		return nil, domain.ErrTrancheNotFound
	}

	// Валидация работает только с загруженным подтверждением
	tranche := &plan.Schedule[index]
	if tranche.Status != domain.TrancheStatusProofUploaded {
		return nil, domain.ErrInvalidTrancheState
	}
	if tranche.TransactionProof == nil || tranche.TransactionProof.Sender == "" || tranche.TransactionProof.Reference == "" {
		return nil, domain.ErrProofIncomplete
	}

	now := time.Now()
	var penalty float64
	if tranche.DueDate.Before(now) {
		product, err := s.productRepo.GetProductByID(ctx, order.Items[0].ProductID)
		if err != nil {
			return nil, fmt.Errorf("plan service: failed to load product for penalty rate: %w", err)
		}
		penalty = money.Round2(tranche.Amount * product.InstallmentLatePenaltyRate / 100)
	}

	if err := domain.TransitionTranche(tranche, domain.TrancheStatusPaid); err != nil {
		return nil, err
	}
	tranche.PenaltyAmount = penalty
	tranche.ValidatedBy = &sellerID
	tranche.ValidatedAt = &now

	plan.AmountPaid = money.FromCents(money.Cents(plan.AmountPaid) + money.Cents(tranche.Amount) + money.Cents(penalty))
	plan.TotalPenaltyAccrued = money.FromCents(money.Cents(plan.TotalPenaltyAccrued) + money.Cents(penalty))

	syncTotals(order, plan)
	recomputeAggregates(plan)

	completed := money.Cents(plan.RemainingAmount) <= 0
	derived := domain.OrderStatusInstallmentActive
	switch {
	case completed:
		derived = domain.OrderStatusCompleted
	case plan.OverdueCount > 0:
		derived = domain.OrderStatusOverdueInstallment
	}
	if order.Status != derived {
		if err := domain.TransitionOrder(order, derived); err != nil {
			return nil, err
		}
	}
	if completed {
		plan.NextDueDate = nil
	}

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("plan service: failed to validate tranche %d of order %d: %w", index, orderID, err)
	}

	if completed {
		// Счетчики продаж пересчитываются после авторитетной записи;
		// их сбой не откатывает валидацию
		for _, item := range order.Items {
			if err := s.productRepo.RecalculateSalesCount(ctx, item.ProductID); err != nil {
				s.logger.Error("failed to recalculate sales count",
					zap.Int64("product_id", item.ProductID),
					zap.Error(err),
				)
			}
		}
	}

	s.notifier.Notify(ctx, order.CustomerID, sellerID, domain.NotificationPaymentValidated,
		map[string]any{"orderId": order.ID, "tranche": index, "penalty": penalty})
	if completed {
		s.notifier.Notify(ctx, order.CustomerID, sellerID, domain.NotificationPlanCompleted,
			map[string]any{"orderId": order.ID})
	}

	return order, nil
}

// sellerOrder загружает заказ и проверяет права продавца и наличие плана
func (s *PlanService) sellerOrder(ctx context.Context, sellerID, orderID int64) (*domain.Order, *domain.InstallmentPlan, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order.SellerID != sellerID {
		return nil, nil, domain.ErrNotOrderSeller
	}
	if order.Plan == nil || len(order.Plan.Schedule) == 0 {
		return nil, nil, domain.ErrInvalidOrderState
	}

	return order, order.Plan, nil
}

// syncTotals зеркалирует денежные агрегаты плана в заказ.
// Остаток — непогашенный принципал: total + пени - оплачено.
func syncTotals(order *domain.Order, plan *domain.InstallmentPlan) {
	remaining := money.Cents(plan.TotalAmount) + money.Cents(plan.TotalPenaltyAccrued) - money.Cents(plan.AmountPaid)
	if remaining < 0 {
		remaining = 0
	}
	plan.RemainingAmount = money.FromCents(remaining)

	order.TotalAmount = plan.TotalAmount
	order.PaidAmount = plan.AmountPaid
	order.RemainingAmount = plan.RemainingAmount
}

// recomputeAggregates пересчитывает кешированные агрегаты плана из графика.
// Агрегаты никогда не являются источником истины сами по себе.
func recomputeAggregates(plan *domain.InstallmentPlan) {
	overdue := 0
	var next *time.Time
	for i := range plan.Schedule {
		t := &plan.Schedule[i]
		if t.Status == domain.TrancheStatusOverdue {
			overdue++
		}
		if t.Resolved() {
			continue
		}
		if next == nil || t.DueDate.Before(*next) {
			due := t.DueDate
			next = &due
		}
	}

	plan.OverdueCount = overdue
	plan.NextDueDate = next
}
