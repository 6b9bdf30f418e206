package service

import (
	"context"
	"testing"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	domainmocks "github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type planFixture struct {
	svc          *PlanService
	orderRepo    *domainmocks.OrderRepositoryMock
	productRepo  *domainmocks.ProductRepositoryMock
	cartRepo     *domainmocks.CartRepositoryMock
	restrictions *domainmocks.RestrictionCheckerMock
	eligibility  *domainmocks.EligibilityServiceMock
	notifier     *domainmocks.NotifierMock
}

func newPlanFixture(t *testing.T) *planFixture {
	f := &planFixture{
		orderRepo:    domainmocks.NewOrderRepositoryMock(t),
		productRepo:  domainmocks.NewProductRepositoryMock(t),
		cartRepo:     domainmocks.NewCartRepositoryMock(t),
		restrictions: domainmocks.NewRestrictionCheckerMock(t),
		eligibility:  domainmocks.NewEligibilityServiceMock(t),
		notifier:     domainmocks.NewNotifierMock(t),
	}
	logger, _ := zap.NewDevelopment()
	f.svc = NewPlanService(f.orderRepo, f.productRepo, f.cartRepo, f.restrictions, f.eligibility, f.notifier, logger)
	return f
}

func installmentProduct() *domain.Product {
	return &domain.Product{
		ID:                           10,
		SellerID:                     2,
		Name:                         "Generator",
		Price:                        15000,
		InstallmentEnabled:           true,
		InstallmentMinAmount:         5000,
		InstallmentDurationDays:      60,
		InstallmentLatePenaltyRate:   5,
		InstallmentMaxMissedPayments: 3,
	}
}

func validCheckout() *domain.CheckoutRequest {
	return &domain.CheckoutRequest{
		ProductID:    10,
		Quantity:     3,
		FirstPayment: 15000,
		Proof:        &domain.TransactionProof{Sender: "+243811111111", Reference: "MP-001", Amount: 15000},
	}
}

// pendingOrder — заказ сразу после оформления, продажа еще не подтверждена
func pendingOrder() *domain.Order {
	now := time.Now()
	return &domain.Order{
		ID:         100,
		CustomerID: 1,
		SellerID:   2,
		Items: []domain.OrderItem{
			{ProductID: 10, Name: "Generator", Price: 15000, Quantity: 3, ShopID: 2},
		},
		Status:          domain.OrderStatusPendingInstallment,
		TotalAmount:     45000,
		RemainingAmount: 45000,
		Plan: &domain.InstallmentPlan{
			TotalAmount:     45000,
			RemainingAmount: 45000,
			Schedule: []domain.Tranche{
				{
					DueDate:          now,
					Amount:           15000,
					Status:           domain.TrancheStatusProofUploaded,
					TransactionProof: &domain.TransactionProof{Sender: "+243811111111", Reference: "MP-001", Amount: 15000},
				},
				{DueDate: now.AddDate(0, 0, 30), Amount: 15000, Status: domain.TrancheStatusPending},
				{DueDate: now.AddDate(0, 0, 60), Amount: 15000, Status: domain.TrancheStatusPending},
			},
			EligibilityScore: 80,
			RiskLevel:        domain.RiskLevelLow,
		},
		Version: 1,
	}
}

// activeOrder — обслуживаемый заказ: продажа подтверждена, первый взнос закрыт
func activeOrder() *domain.Order {
	order := pendingOrder()
	now := time.Now()
	sellerID := order.SellerID

	order.Status = domain.OrderStatusInstallmentActive
	order.PaidAmount = 15000
	order.RemainingAmount = 30000

	plan := order.Plan
	plan.AmountPaid = 15000
	plan.RemainingAmount = 30000
	plan.SaleConfirmedAt = &now
	plan.SaleConfirmedBy = &sellerID
	plan.Schedule[0].Status = domain.TrancheStatusPaid
	plan.Schedule[0].ValidatedBy = &sellerID
	plan.Schedule[0].ValidatedAt = &now

	return order
}

func TestPlanService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newPlanFixture(t)

		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()
		f.restrictions.EXPECT().IsRestricted(mock.Anything, int64(1)).Return(false, nil).Once()
		f.eligibility.EXPECT().Score(mock.Anything, int64(1)).
			Return(&domain.EligibilityResult{Score: 80, RiskLevel: domain.RiskLevelLow}, nil).Once()
		f.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				order.ID = 100
				return order, nil
			}).Once()
		f.cartRepo.EXPECT().RemoveItem(mock.Anything, int64(1), int64(10)).Return(nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(2), int64(1), domain.NotificationSaleConfirmationRequired, mock.Anything).Return().Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(1), domain.NotificationOrderCreated, mock.Anything).Return().Once()

		order, err := f.svc.Checkout(ctx, 1, validCheckout())
		require.NoError(t, err)

		assert.Equal(t, domain.OrderStatusPendingInstallment, order.Status)
		assert.Equal(t, 45000.0, order.TotalAmount)
		assert.Equal(t, 0.0, order.PaidAmount)
		assert.Equal(t, 45000.0, order.RemainingAmount)

		plan := order.Plan
		require.NotNil(t, plan)
		require.Len(t, plan.Schedule, 3)
		assert.Equal(t, domain.TrancheStatusProofUploaded, plan.Schedule[0].Status)
		assert.Equal(t, 15000.0, plan.Schedule[0].Amount)
		assert.Equal(t, 15000.0, plan.Schedule[1].Amount)
		assert.Equal(t, 15000.0, plan.Schedule[2].Amount)
		assert.Equal(t, 80, plan.EligibilityScore)
		assert.False(t, plan.SaleConfirmed())
		assert.Zero(t, plan.OverdueCount)
		require.NotNil(t, plan.NextDueDate)
	})

	t.Run("Invalid input", func(t *testing.T) {
		f := newPlanFixture(t)

		req := validCheckout()
		req.Proof = nil

		_, err := f.svc.Checkout(ctx, 1, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Installment disabled", func(t *testing.T) {
		f := newPlanFixture(t)

		product := installmentProduct()
		product.InstallmentEnabled = false
		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil).Once()

		_, err := f.svc.Checkout(ctx, 1, validCheckout())
		assert.ErrorIs(t, err, domain.ErrInstallmentNotAvailable)
	})

	t.Run("Offering window closed", func(t *testing.T) {
		f := newPlanFixture(t)

		product := installmentProduct()
		past := time.Now().AddDate(0, 0, -1)
		product.InstallmentEndDate = &past
		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil).Once()

		_, err := f.svc.Checkout(ctx, 1, validCheckout())
		assert.ErrorIs(t, err, domain.ErrInstallmentWindowClosed)
	})

	t.Run("Offering window not open yet", func(t *testing.T) {
		f := newPlanFixture(t)

		product := installmentProduct()
		future := time.Now().AddDate(0, 0, 1)
		product.InstallmentStartDate = &future
		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil).Once()

		_, err := f.svc.Checkout(ctx, 1, validCheckout())
		assert.ErrorIs(t, err, domain.ErrInstallmentWindowClosed)
	})

	t.Run("Customer restricted", func(t *testing.T) {
		f := newPlanFixture(t)

		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()
		f.restrictions.EXPECT().IsRestricted(mock.Anything, int64(1)).Return(true, nil).Once()

		_, err := f.svc.Checkout(ctx, 1, validCheckout())
		assert.ErrorIs(t, err, domain.ErrCustomerRestricted)
	})

	t.Run("First payment below minimum", func(t *testing.T) {
		f := newPlanFixture(t)

		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()
		f.restrictions.EXPECT().IsRestricted(mock.Anything, int64(1)).Return(false, nil).Once()

		req := validCheckout()
		req.FirstPayment = 4000
		req.Proof.Amount = 4000

		_, err := f.svc.Checkout(ctx, 1, req)
		assert.ErrorIs(t, err, domain.ErrFirstPaymentBelowMinimum)
	})

	t.Run("First payment exceeds total", func(t *testing.T) {
		f := newPlanFixture(t)

		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()
		f.restrictions.EXPECT().IsRestricted(mock.Anything, int64(1)).Return(false, nil).Once()

		req := validCheckout()
		req.FirstPayment = 50000
		req.Proof.Amount = 50000

		_, err := f.svc.Checkout(ctx, 1, req)
		assert.ErrorIs(t, err, domain.ErrFirstPaymentExceedsTotal)
	})

	t.Run("Proof amount mismatch", func(t *testing.T) {
		f := newPlanFixture(t)

		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()
		f.restrictions.EXPECT().IsRestricted(mock.Anything, int64(1)).Return(false, nil).Once()

		req := validCheckout()
		req.Proof.Amount = 14000

		_, err := f.svc.Checkout(ctx, 1, req)
		assert.ErrorIs(t, err, domain.ErrProofAmountMismatch)
	})

	t.Run("Zero duration with unpaid remainder", func(t *testing.T) {
		f := newPlanFixture(t)

		// Включенная рассрочка с нулевой длительностью не дает графика
		// на остаток: заказ не создается
		product := installmentProduct()
		product.InstallmentDurationDays = 0
		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil).Once()
		f.restrictions.EXPECT().IsRestricted(mock.Anything, int64(1)).Return(false, nil).Once()

		_, err := f.svc.Checkout(ctx, 1, validCheckout())
		assert.ErrorIs(t, err, domain.ErrInstallmentMisconfigured)
	})

	t.Run("Full first payment tolerates zero duration", func(t *testing.T) {
		f := newPlanFixture(t)

		product := installmentProduct()
		product.InstallmentDurationDays = 0
		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil).Once()
		f.restrictions.EXPECT().IsRestricted(mock.Anything, int64(1)).Return(false, nil).Once()
		f.eligibility.EXPECT().Score(mock.Anything, int64(1)).
			Return(&domain.EligibilityResult{Score: 80, RiskLevel: domain.RiskLevelLow}, nil).Once()
		f.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				order.ID = 100
				return order, nil
			}).Once()
		f.cartRepo.EXPECT().RemoveItem(mock.Anything, int64(1), int64(10)).Return(nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(2), int64(1), domain.NotificationSaleConfirmationRequired, mock.Anything).Return().Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(1), domain.NotificationOrderCreated, mock.Anything).Return().Once()

		req := validCheckout()
		req.FirstPayment = 45000
		req.Proof.Amount = 45000

		order, err := f.svc.Checkout(ctx, 1, req)
		require.NoError(t, err)
		require.Len(t, order.Plan.Schedule, 1)
		assert.Equal(t, 45000.0, order.Plan.Schedule[0].Amount)
	})

	t.Run("Guarantor required", func(t *testing.T) {
		f := newPlanFixture(t)

		product := installmentProduct()
		product.InstallmentRequireGuarantor = true
		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil).Once()
		f.restrictions.EXPECT().IsRestricted(mock.Anything, int64(1)).Return(false, nil).Once()

		_, err := f.svc.Checkout(ctx, 1, validCheckout())
		assert.ErrorIs(t, err, domain.ErrGuarantorRequired)
	})

	t.Run("Incomplete guarantor rejected", func(t *testing.T) {
		f := newPlanFixture(t)

		product := installmentProduct()
		product.InstallmentRequireGuarantor = true
		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil).Once()
		f.restrictions.EXPECT().IsRestricted(mock.Anything, int64(1)).Return(false, nil).Once()

		req := validCheckout()
		req.Guarantor = &domain.Guarantor{Name: "Jean"}

		_, err := f.svc.Checkout(ctx, 1, req)
		assert.ErrorIs(t, err, domain.ErrGuarantorRequired)
	})
}

func TestPlanService_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Customer sees own order", func(t *testing.T) {
		f := newPlanFixture(t)
		order := activeOrder()
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()

		got, err := f.svc.GetOrder(ctx, 1, 100)
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("Seller sees serviced order", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(activeOrder(), nil).Once()

		_, err := f.svc.GetOrder(ctx, 2, 100)
		require.NoError(t, err)
	})

	t.Run("Stranger gets not found", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(activeOrder(), nil).Once()

		_, err := f.svc.GetOrder(ctx, 99, 100)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestPlanService_ConfirmSale(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newPlanFixture(t)
		order := pendingOrder()

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(2), domain.NotificationSaleConfirmed, mock.Anything).Return().Once()

		got, err := f.svc.ConfirmSale(ctx, 2, 100)
		require.NoError(t, err)

		assert.Equal(t, domain.OrderStatusInstallmentActive, got.Status)
		assert.True(t, got.Plan.SaleConfirmed())
		assert.Equal(t, int64(2), *got.Plan.SaleConfirmedBy)

		first := got.Plan.Schedule[0]
		assert.Equal(t, domain.TrancheStatusPaid, first.Status)
		assert.Equal(t, int64(2), *first.ValidatedBy)

		assert.Equal(t, 15000.0, got.Plan.AmountPaid)
		assert.Equal(t, 30000.0, got.Plan.RemainingAmount)
		assert.Equal(t, 15000.0, got.PaidAmount)
		assert.Equal(t, 30000.0, got.RemainingAmount)
	})

	t.Run("Wrong seller", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(pendingOrder(), nil).Once()

		_, err := f.svc.ConfirmSale(ctx, 99, 100)
		assert.ErrorIs(t, err, domain.ErrNotOrderSeller)
	})

	t.Run("Already confirmed", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(activeOrder(), nil).Once()

		_, err := f.svc.ConfirmSale(ctx, 2, 100)
		assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
	})
}

func TestPlanService_RejectSale(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newPlanFixture(t)
		order := pendingOrder()

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(2), domain.NotificationOrderCancelled, mock.Anything).Return().Once()

		got, err := f.svc.RejectSale(ctx, 2, 100, "payment never arrived")
		require.NoError(t, err)

		assert.Equal(t, domain.OrderStatusCancelled, got.Status)
		assert.Equal(t, "payment never arrived", got.Plan.CancelReason)
	})

	t.Run("Active order cannot be cancelled", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(activeOrder(), nil).Once()

		_, err := f.svc.RejectSale(ctx, 2, 100, "too late")
		assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
	})
}

func TestPlanService_SubmitTrancheProof(t *testing.T) {
	ctx := context.Background()
	proof := &domain.TransactionProof{Sender: "+243811111111", Reference: "MP-002", Amount: 15000}

	t.Run("Success", func(t *testing.T) {
		f := newPlanFixture(t)
		order := activeOrder()

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(2), int64(1), domain.NotificationProofSubmitted, mock.Anything).Return().Once()

		got, err := f.svc.SubmitTrancheProof(ctx, 1, 100, 1, proof)
		require.NoError(t, err)

		tranche := got.Plan.Schedule[1]
		assert.Equal(t, domain.TrancheStatusProofUploaded, tranche.Status)
		assert.Equal(t, proof, tranche.TransactionProof)
	})

	t.Run("Sale not confirmed", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(pendingOrder(), nil).Once()

		_, err := f.svc.SubmitTrancheProof(ctx, 1, 100, 1, proof)
		assert.ErrorIs(t, err, domain.ErrSaleNotConfirmed)
	})

	t.Run("Earlier tranche unresolved", func(t *testing.T) {
		f := newPlanFixture(t)
		order := activeOrder()

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()

		_, err := f.svc.SubmitTrancheProof(ctx, 1, 100, 2, proof)
		assert.ErrorIs(t, err, domain.ErrEarlierTrancheUnresolved)
	})

	t.Run("Amount mismatch", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(activeOrder(), nil).Once()

		bad := &domain.TransactionProof{Sender: "+243811111111", Reference: "MP-002", Amount: 10000}
		_, err := f.svc.SubmitTrancheProof(ctx, 1, 100, 1, bad)
		assert.ErrorIs(t, err, domain.ErrProofAmountMismatch)
	})

	t.Run("Not order customer", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(activeOrder(), nil).Once()

		_, err := f.svc.SubmitTrancheProof(ctx, 99, 100, 1, proof)
		assert.ErrorIs(t, err, domain.ErrNotOrderCustomer)
	})

	t.Run("Tranche index out of range", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(activeOrder(), nil).Once()

		_, err := f.svc.SubmitTrancheProof(ctx, 1, 100, 7, proof)
		assert.ErrorIs(t, err, domain.ErrTrancheNotFound)
	})
}

func TestPlanService_ValidateTranche(t *testing.T) {
	ctx := context.Background()

	// withProof переводит взнос в proof_uploaded
	withProof := func(order *domain.Order, index int) *domain.Order {
		order.Plan.Schedule[index].Status = domain.TrancheStatusProofUploaded
		order.Plan.Schedule[index].TransactionProof = &domain.TransactionProof{
			Sender:    "+243811111111",
			Reference: "MP-002",
			Amount:    order.Plan.Schedule[index].Amount,
		}
		return order
	}

	t.Run("On-time payment has no penalty", func(t *testing.T) {
		f := newPlanFixture(t)
		order := withProof(activeOrder(), 1)

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(2), domain.NotificationPaymentValidated, mock.Anything).Return().Once()

		got, err := f.svc.ValidateTranche(ctx, 2, 100, 1)
		require.NoError(t, err)

		tranche := got.Plan.Schedule[1]
		assert.Equal(t, domain.TrancheStatusPaid, tranche.Status)
		assert.Zero(t, tranche.PenaltyAmount)
		assert.Equal(t, domain.OrderStatusInstallmentActive, got.Status)
		assert.Equal(t, 30000.0, got.Plan.AmountPaid)
		assert.Equal(t, 15000.0, got.Plan.RemainingAmount)
	})

	t.Run("Late payment accrues penalty", func(t *testing.T) {
		f := newPlanFixture(t)
		order := withProof(activeOrder(), 1)
		order.Plan.Schedule[1].DueDate = time.Now().AddDate(0, 0, -10)

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()
		f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(2), domain.NotificationPaymentValidated, mock.Anything).Return().Once()

		got, err := f.svc.ValidateTranche(ctx, 2, 100, 1)
		require.NoError(t, err)

		// 5% от 15000
		tranche := got.Plan.Schedule[1]
		assert.Equal(t, 750.0, tranche.PenaltyAmount)
		assert.Equal(t, 750.0, got.Plan.TotalPenaltyAccrued)
		// Пеня увеличивает оплаченное, но не общую сумму
		assert.Equal(t, 30750.0, got.Plan.AmountPaid)
		assert.Equal(t, 45000.0, got.Plan.TotalAmount)
		assert.Equal(t, 15000.0, got.Plan.RemainingAmount)
	})

	t.Run("Final tranche completes the plan", func(t *testing.T) {
		f := newPlanFixture(t)
		order := activeOrder()
		// Второй взнос уже закрыт, остается последний
		order.Plan.Schedule[1].Status = domain.TrancheStatusPaid
		order.Plan.AmountPaid = 30000
		order.Plan.RemainingAmount = 15000
		order = withProof(order, 2)

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
		f.productRepo.EXPECT().RecalculateSalesCount(mock.Anything, int64(10)).Return(nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(2), domain.NotificationPaymentValidated, mock.Anything).Return().Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(2), domain.NotificationPlanCompleted, mock.Anything).Return().Once()

		got, err := f.svc.ValidateTranche(ctx, 2, 100, 2)
		require.NoError(t, err)

		assert.Equal(t, domain.OrderStatusCompleted, got.Status)
		assert.Equal(t, 45000.0, got.Plan.AmountPaid)
		assert.Zero(t, got.Plan.RemainingAmount)
		assert.Nil(t, got.Plan.NextDueDate)
	})

	t.Run("Missing proof details", func(t *testing.T) {
		f := newPlanFixture(t)
		order := activeOrder()
		order.Plan.Schedule[1].Status = domain.TrancheStatusProofUploaded
		order.Plan.Schedule[1].TransactionProof = &domain.TransactionProof{Amount: 15000}

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()

		_, err := f.svc.ValidateTranche(ctx, 2, 100, 1)
		assert.ErrorIs(t, err, domain.ErrProofIncomplete)
	})

	t.Run("Tranche without proof", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(activeOrder(), nil).Once()

		_, err := f.svc.ValidateTranche(ctx, 2, 100, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidTrancheState)
	})

	t.Run("Pending order rejected", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(pendingOrder(), nil).Once()

		_, err := f.svc.ValidateTranche(ctx, 2, 100, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
	})
}

func TestPlanService_RejectTranche(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newPlanFixture(t)
		order := activeOrder()
		order.Plan.Schedule[1].Status = domain.TrancheStatusProofUploaded
		order.Plan.Schedule[1].TransactionProof = &domain.TransactionProof{Sender: "x", Reference: "y", Amount: 15000}

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(2), domain.NotificationProofRejected, mock.Anything).Return().Once()

		got, err := f.svc.RejectTranche(ctx, 2, 100, 1)
		require.NoError(t, err)

		tranche := got.Plan.Schedule[1]
		assert.Equal(t, domain.TrancheStatusPending, tranche.Status)
		assert.Nil(t, tranche.TransactionProof)
	})

	t.Run("Version conflict propagates", func(t *testing.T) {
		f := newPlanFixture(t)
		order := activeOrder()
		order.Plan.Schedule[1].Status = domain.TrancheStatusProofUploaded
		order.Plan.Schedule[1].TransactionProof = &domain.TransactionProof{Sender: "x", Reference: "y", Amount: 15000}

		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(domain.ErrVersionConflict).Once()

		_, err := f.svc.RejectTranche(ctx, 2, 100, 1)
		assert.ErrorIs(t, err, domain.ErrVersionConflict)
	})

	t.Run("Pending tranche cannot be rejected", func(t *testing.T) {
		f := newPlanFixture(t)
		f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(activeOrder(), nil).Once()

		_, err := f.svc.RejectTranche(ctx, 2, 100, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidTrancheState)
	})
}
