package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	domainmocks "github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type poolFixture struct {
	pool        *Pool
	orderRepo   *domainmocks.OrderRepositoryMock
	productRepo *domainmocks.ProductRepositoryMock
	notifier    *domainmocks.NotifierMock
	outbox      *domainmocks.NotificationRepositoryMock
	dispatcher  *domainmocks.NotificationDispatcherMock
}

func newPoolFixture(t *testing.T) *poolFixture {
	f := &poolFixture{
		orderRepo:   domainmocks.NewOrderRepositoryMock(t),
		productRepo: domainmocks.NewProductRepositoryMock(t),
		notifier:    domainmocks.NewNotifierMock(t),
		outbox:      domainmocks.NewNotificationRepositoryMock(t),
		dispatcher:  domainmocks.NewNotificationDispatcherMock(t),
	}
	logger, _ := zap.NewDevelopment()
	cfg := PoolConfig{
		Workers:         1,
		QueueSize:       10,
		ScanInterval:    time.Minute,
		ReminderHorizon: 72 * time.Hour,
		DispatchBatch:   10,
	}
	f.pool = NewPool(cfg, f.orderRepo, f.productRepo, f.notifier, f.outbox, f.dispatcher, logger)
	return f
}

// servicedOrder — подтвержденный заказ в обслуживании: первый взнос закрыт,
// два по графику
func servicedOrder() *domain.Order {
	now := time.Now()
	confirmed := now.Add(-time.Hour)
	sellerID := int64(2)
	due1 := now.AddDate(0, 0, 30)
	due2 := now.AddDate(0, 0, 60)

	return &domain.Order{
		ID:         100,
		CustomerID: 1,
		SellerID:   sellerID,
		Items: []domain.OrderItem{
			{ProductID: 10, Name: "Generator", Price: 15000, Quantity: 3, ShopID: sellerID},
		},
		Status:          domain.OrderStatusInstallmentActive,
		TotalAmount:     45000,
		PaidAmount:      15000,
		RemainingAmount: 30000,
		Plan: &domain.InstallmentPlan{
			TotalAmount:     45000,
			AmountPaid:      15000,
			RemainingAmount: 30000,
			Schedule: []domain.Tranche{
				{DueDate: now.Add(-time.Hour), Amount: 15000, Status: domain.TrancheStatusPaid},
				{DueDate: due1, Amount: 15000, Status: domain.TrancheStatusPending},
				{DueDate: due2, Amount: 15000, Status: domain.TrancheStatusPending},
			},
			SaleConfirmedAt: &confirmed,
			SaleConfirmedBy: &sellerID,
			NextDueDate:     &due1,
		},
		Version: 1,
	}
}

func installmentProduct() *domain.Product {
	return &domain.Product{
		ID:                           10,
		SellerID:                     2,
		Name:                         "Generator",
		Price:                        15000,
		InstallmentEnabled:           true,
		InstallmentDurationDays:      60,
		InstallmentLatePenaltyRate:   5,
		InstallmentMaxMissedPayments: 3,
	}
}

func TestPool_SweepOrder_MarksOverdue(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	order := servicedOrder()
	order.Plan.Schedule[1].DueDate = time.Now().AddDate(0, 0, -1)

	f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
	// Обе стороны узнают о просрочке
	f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(2), domain.NotificationPaymentOverdue, mock.Anything).Return().Once()
	f.notifier.EXPECT().Notify(mock.Anything, int64(2), int64(1), domain.NotificationPaymentOverdue, mock.Anything).Return().Once()
	f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
	f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()

	f.pool.sweepOrder(ctx, 100)

	tranche := order.Plan.Schedule[1]
	assert.Equal(t, domain.TrancheStatusOverdue, tranche.Status)
	require.NotNil(t, tranche.OverdueNotifiedAt)
	assert.Equal(t, 1, order.Plan.OverdueCount)
	assert.Equal(t, domain.OrderStatusOverdueInstallment, order.Status)
}

func TestPool_SweepOrder_SecondPassIsIdempotent(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	// Заказ уже помечен предыдущим проходом
	now := time.Now()
	stamp := now.Add(-time.Minute)
	overdueDue := now.AddDate(0, 0, -1)
	order := servicedOrder()
	order.Status = domain.OrderStatusOverdueInstallment
	order.Plan.Schedule[1].DueDate = overdueDue
	order.Plan.Schedule[1].Status = domain.TrancheStatusOverdue
	order.Plan.Schedule[1].OverdueNotifiedAt = &stamp
	order.Plan.OverdueCount = 1
	order.Plan.NextDueDate = &overdueDue

	f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
	// Без изменений нет ни записи, ни повторных уведомлений
	f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()

	f.pool.sweepOrder(ctx, 100)

	assert.Equal(t, &stamp, order.Plan.Schedule[1].OverdueNotifiedAt)
}

func TestPool_SweepOrder_SendsReminderOnce(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	due := time.Now().Add(48 * time.Hour)
	order := servicedOrder()
	order.Plan.Schedule[1].DueDate = due
	order.Plan.NextDueDate = &due

	f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
	f.notifier.EXPECT().Notify(mock.Anything, int64(1), int64(2), domain.NotificationPaymentReminder, mock.Anything).Return().Once()
	f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
	f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()

	f.pool.sweepOrder(ctx, 100)

	require.NotNil(t, order.Plan.Schedule[1].ReminderSentAt)
	assert.Equal(t, domain.OrderStatusInstallmentActive, order.Status)

	// Повторный проход не шлет напоминание заново
	f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
	f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()

	f.pool.sweepOrder(ctx, 100)
}

func TestPool_SweepOrder_SuspendsOffering(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	// Обе даты графика просрочены и уже помечены, порог товара — 2 пропуска
	now := time.Now()
	stamp := now.Add(-time.Minute)
	due1 := now.AddDate(0, 0, -40)
	due2 := now.AddDate(0, 0, -10)
	order := servicedOrder()
	order.Status = domain.OrderStatusOverdueInstallment
	for i, due := range []time.Time{due1, due2} {
		order.Plan.Schedule[i+1].DueDate = due
		order.Plan.Schedule[i+1].Status = domain.TrancheStatusOverdue
		order.Plan.Schedule[i+1].OverdueNotifiedAt = &stamp
	}
	order.Plan.OverdueCount = 2
	order.Plan.NextDueDate = &due1

	product := installmentProduct()
	product.InstallmentMaxMissedPayments = 2

	f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
	f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil).Once()
	f.productRepo.EXPECT().SuspendInstallments(mock.Anything, int64(10), mock.Anything).Return(true, nil).Once()
	f.notifier.EXPECT().Notify(mock.Anything, int64(2), int64(1), domain.NotificationOfferingSuspended, mock.Anything).Return().Once()

	f.pool.sweepOrder(ctx, 100)
}

func TestPool_SweepOrder_SuspensionAlreadyApplied(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	now := time.Now()
	stamp := now.Add(-time.Minute)
	due := now.AddDate(0, 0, -10)
	order := servicedOrder()
	order.Status = domain.OrderStatusOverdueInstallment
	order.Plan.Schedule[1].DueDate = due
	order.Plan.Schedule[1].Status = domain.TrancheStatusOverdue
	order.Plan.Schedule[1].OverdueNotifiedAt = &stamp
	order.Plan.Schedule[2].DueDate = due
	order.Plan.Schedule[2].Status = domain.TrancheStatusOverdue
	order.Plan.Schedule[2].OverdueNotifiedAt = &stamp
	order.Plan.OverdueCount = 2
	order.Plan.NextDueDate = &due

	product := installmentProduct()
	product.InstallmentMaxMissedPayments = 2

	f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
	f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil).Once()
	// Условная запись не затронула строк: рассрочка уже снята, уведомления нет
	f.productRepo.EXPECT().SuspendInstallments(mock.Anything, int64(10), mock.Anything).Return(false, nil).Once()

	f.pool.sweepOrder(ctx, 100)
}

func TestPool_SweepOrder_VersionConflictSkips(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	order := servicedOrder()
	order.Plan.Schedule[1].DueDate = time.Now().AddDate(0, 0, -1)

	f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
	// Конкурентная запись: отметки не сохранены, уведомления не уходят,
	// приостановка не проверяется — заказ пересмотрят на следующем проходе
	f.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(domain.ErrVersionConflict).Once()

	f.pool.sweepOrder(ctx, 100)
}

func TestPool_SweepOrder_UploadedProofNotMarkedOverdue(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	// Просроченный по дате взнос с загруженным подтверждением ждет
	// решения продавца и не объявляется просроченным
	past := time.Now().AddDate(0, 0, -1)
	order := servicedOrder()
	order.Plan.Schedule[1].DueDate = past
	order.Plan.Schedule[1].Status = domain.TrancheStatusProofUploaded
	order.Plan.Schedule[1].TransactionProof = &domain.TransactionProof{Sender: "x", Reference: "y", Amount: 15000}
	order.Plan.NextDueDate = &past

	f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
	f.productRepo.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(installmentProduct(), nil).Once()

	f.pool.sweepOrder(ctx, 100)

	assert.Equal(t, domain.TrancheStatusProofUploaded, order.Plan.Schedule[1].Status)
	assert.Nil(t, order.Plan.Schedule[1].OverdueNotifiedAt)
	assert.Equal(t, domain.OrderStatusInstallmentActive, order.Status)
	assert.Zero(t, order.Plan.OverdueCount)
}

func TestPool_SweepOrder_IgnoresTerminalOrders(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	order := servicedOrder()
	order.Status = domain.OrderStatusCompleted

	f.orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()

	f.pool.sweepOrder(ctx, 100)
}

func TestPool_ScanServicedOrders(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	orders := []*domain.Order{
		{ID: 100, Status: domain.OrderStatusInstallmentActive},
		{ID: 200, Status: domain.OrderStatusOverdueInstallment},
	}
	f.orderRepo.EXPECT().GetServicedInstallmentOrders(mock.Anything).Return(orders, nil).Once()

	f.pool.scanServicedOrders(ctx)

	assert.Equal(t, int64(100), <-f.pool.queue)
	assert.Equal(t, int64(200), <-f.pool.queue)
}

func TestPool_ScanServicedOrders_RepoError(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	f.orderRepo.EXPECT().GetServicedInstallmentOrders(mock.Anything).Return(nil, errors.New("db error")).Once()

	f.pool.scanServicedOrders(ctx)

	assert.Empty(t, f.pool.queue)
}

func TestPool_DrainNotifications(t *testing.T) {
	f := newPoolFixture(t)
	ctx := context.Background()

	notifications := []*domain.Notification{
		{ID: 1, RecipientID: 1, Type: domain.NotificationPaymentReminder},
		{ID: 2, RecipientID: 2, Type: domain.NotificationPaymentOverdue},
	}
	f.outbox.EXPECT().GetUnsentNotifications(mock.Anything, 10).Return(notifications, nil).Once()
	f.dispatcher.EXPECT().Dispatch(mock.Anything, notifications[0]).Return(nil).Once()
	f.outbox.EXPECT().MarkNotificationSent(mock.Anything, int64(1)).Return(nil).Once()
	// Сбой доставки оставляет запись в outbox до следующего прохода
	f.dispatcher.EXPECT().Dispatch(mock.Anything, notifications[1]).Return(errors.New("dispatcher unavailable")).Once()

	f.pool.drainNotifications(ctx)
}
