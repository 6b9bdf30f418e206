package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"go.uber.org/zap"
)

// PoolConfig содержит конфигурацию пула сверки
type PoolConfig struct {
	Workers         int
	QueueSize       int
	ScanInterval    time.Duration
	ReminderHorizon time.Duration
	DispatchBatch   int
}

// Pool представляет пул воркеров фоновой сверки рассрочек.
// Сканер периодически собирает обслуживаемые заказы, воркеры обрабатывают
// их независимо: заказы не разделяют мутируемого состояния, поэтому
// параллелизм между заказами безопасен, а конфликт с пользовательским
// запросом по одному заказу ловится версией при записи.
type Pool struct {
	workers         int
	queue           chan int64
	orderRepo       domain.OrderRepository
	productRepo     domain.ProductRepository
	notifier        domain.Notifier
	outbox          domain.NotificationRepository
	dispatcher      domain.NotificationDispatcher
	logger          *zap.Logger
	wg              sync.WaitGroup
	scanInterval    time.Duration
	reminderHorizon time.Duration
	dispatchBatch   int
}

// NewPool создает новый пул сверки
func NewPool(
	cfg PoolConfig,
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	notifier domain.Notifier,
	outbox domain.NotificationRepository,
	dispatcher domain.NotificationDispatcher,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:         cfg.Workers,
		queue:           make(chan int64, cfg.QueueSize),
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		notifier:        notifier,
		outbox:          outbox,
		dispatcher:      dispatcher,
		logger:          logger,
		scanInterval:    cfg.ScanInterval,
		reminderHorizon: cfg.ReminderHorizon,
		dispatchBatch:   cfg.DispatchBatch,
	}
}

// Start запускает пул сверки
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)

	if p.dispatcher != nil {
		p.wg.Add(1)
		go p.drainer(ctx)
	}
}

// Stop останавливает пул сверки
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker обрабатывает заказы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("sweep worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("sweep worker stopping", zap.Int("worker_id", id))
			return
		case orderID, ok := <-p.queue:
			if !ok {
				return
			}
			p.sweepOrder(ctx, orderID)
		}
	}
}

// scanner периодически запускает проход сверки
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("sweep scanner stopping")
			return
		case <-ticker.C:
			p.scanServicedOrders(ctx)
		}
	}
}

// scanServicedOrders собирает обслуживаемые заказы и отправляет их в очередь
func (p *Pool) scanServicedOrders(ctx context.Context) {
	orders, err := p.orderRepo.GetServicedInstallmentOrders(ctx)
	if err != nil {
		p.logger.Error("failed to get serviced installment orders", zap.Error(err))
		return
	}

	for _, order := range orders {
		select {
		case p.queue <- order.ID:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, заказ дождется следующего прохода
			p.logger.Warn("sweep queue is full, skipping order", zap.Int64("order_id", order.ID))
		}
	}
}

// sweepOrder выполняет сверку одного заказа: просрочки, напоминания,
// агрегаты, статус и приостановка рассрочки у товара
func (p *Pool) sweepOrder(ctx context.Context, orderID int64) {
	order, err := p.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		p.logger.Error("failed to load order for sweep", zap.Int64("order_id", orderID), zap.Error(err))
		return
	}

	// Сверка трогает только заказы в обслуживании
	if order.Status != domain.OrderStatusInstallmentActive && order.Status != domain.OrderStatusOverdueInstallment {
		return
	}
	plan := order.Plan
	if plan == nil || !plan.SaleConfirmed() {
		return
	}

	changed, notes := p.sweepSchedule(order)

	overdue, next := scheduleAggregates(plan)
	if overdue != plan.OverdueCount || !equalTimePtr(next, plan.NextDueDate) {
		plan.OverdueCount = overdue
		plan.NextDueDate = next
		changed = true
	}

	// Статус выводится исключительно из overdueCount
	derived := domain.OrderStatusInstallmentActive
	if plan.OverdueCount > 0 {
		derived = domain.OrderStatusOverdueInstallment
	}
	if order.Status != derived && domain.CanTransitionOrder(order.Status, derived) {
		order.Status = derived
		changed = true
	}

	if changed {
		if err := p.orderRepo.UpdateOrder(ctx, order); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				// Конкурентная запись: отметки потеряны вместе с уведомлениями,
				// заказ будет пересмотрен следующим проходом
				p.logger.Warn("sweep lost version race", zap.Int64("order_id", order.ID))
				return
			}
			p.logger.Error("failed to persist sweep results", zap.Int64("order_id", order.ID), zap.Error(err))
			return
		}
	}

	for _, n := range notes {
		p.notifier.Notify(ctx, n.recipient, n.actor, n.noteType, n.metadata)
	}

	p.enforceSuspension(ctx, order)
}

// deferredNote — уведомление, отложенное до успешного сохранения отметок
type deferredNote struct {
	recipient int64
	actor     int64
	noteType  string
	metadata  map[string]any
}

// sweepSchedule помечает просроченные взносы и готовит напоминания.
// Отметки overdueNotifiedAt и reminderSentAt ставятся один раз, а уведомления
// возвращаются отложенными: проигранная гонка версий отбрасывает отметки
// вместе с уведомлениями, без повторной рассылки на следующем проходе.
func (p *Pool) sweepSchedule(order *domain.Order) (bool, []deferredNote) {
	now := time.Now()
	changed := false
	var notes []deferredNote

	for i := range order.Plan.Schedule {
		t := &order.Plan.Schedule[i]
		if t.Resolved() {
			continue
		}

		if !t.DueDate.After(now) {
			if t.Status != domain.TrancheStatusOverdue {
				if err := domain.TransitionTranche(t, domain.TrancheStatusOverdue); err != nil {
					// Загруженное подтверждение ждет решения продавца,
					// просрочка не объявляется
					continue
				}
				changed = true
			}
			if t.OverdueNotifiedAt == nil {
				notes = append(notes,
					deferredNote{order.CustomerID, order.SellerID, domain.NotificationPaymentOverdue,
						map[string]any{"orderId": order.ID, "tranche": i}},
					deferredNote{order.SellerID, order.CustomerID, domain.NotificationPaymentOverdue,
						map[string]any{"orderId": order.ID, "tranche": i}},
				)
				stamp := now
				t.OverdueNotifiedAt = &stamp
				changed = true
			}
			continue
		}

		if t.DueDate.Sub(now) <= p.reminderHorizon && t.ReminderSentAt == nil {
			notes = append(notes, deferredNote{order.CustomerID, order.SellerID, domain.NotificationPaymentReminder,
				map[string]any{"orderId": order.ID, "tranche": i, "dueDate": t.DueDate}})
			stamp := now
			t.ReminderSentAt = &stamp
			changed = true
		}
	}

	return changed, notes
}

// enforceSuspension отключает рассрочку товара при превышении порога
// пропущенных платежей. Повторная приостановка — no-op, уведомление
// отправляется только при фактическом отключении.
func (p *Pool) enforceSuspension(ctx context.Context, order *domain.Order) {
	if len(order.Items) == 0 {
		return
	}

	productID := order.Items[0].ProductID
	product, err := p.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		p.logger.Error("failed to load product for suspension check",
			zap.Int64("product_id", productID), zap.Error(err))
		return
	}

	if !product.InstallmentEnabled || order.Plan.OverdueCount < product.InstallmentMaxMissedPayments {
		return
	}

	suspended, err := p.productRepo.SuspendInstallments(ctx, productID, time.Now())
	if err != nil {
		p.logger.Error("failed to suspend installments",
			zap.Int64("product_id", productID), zap.Error(err))
		return
	}

	if suspended {
		p.logger.Info("installment offering suspended",
			zap.Int64("product_id", productID),
			zap.Int64("order_id", order.ID),
			zap.Int("overdue_count", order.Plan.OverdueCount),
		)
		p.notifier.Notify(ctx, order.SellerID, order.CustomerID, domain.NotificationOfferingSuspended,
			map[string]any{"orderId": order.ID, "productId": productID})
	}
}

// drainer периодически доставляет неотправленные уведомления
// внешнему диспетчеру
func (p *Pool) drainer(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("notification drainer stopping")
			return
		case <-ticker.C:
			p.drainNotifications(ctx)
		}
	}
}

// drainNotifications отправляет порцию outbox-записей.
// Неудачная доставка оставляет запись неотправленной до следующего прохода.
func (p *Pool) drainNotifications(ctx context.Context) {
	notifications, err := p.outbox.GetUnsentNotifications(ctx, p.dispatchBatch)
	if err != nil {
		p.logger.Error("failed to get unsent notifications", zap.Error(err))
		return
	}

	for _, n := range notifications {
		if err := p.dispatcher.Dispatch(ctx, n); err != nil {
			p.logger.Warn("failed to dispatch notification", zap.Int64("notification_id", n.ID), zap.Error(err))
			continue
		}
		if err := p.outbox.MarkNotificationSent(ctx, n.ID); err != nil {
			p.logger.Error("failed to mark notification sent", zap.Int64("notification_id", n.ID), zap.Error(err))
		}
	}
}

// scheduleAggregates считает агрегаты графика: количество просроченных
// взносов и ближайшую дату платежа среди незакрытых
func scheduleAggregates(plan *domain.InstallmentPlan) (int, *time.Time) {
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

	return overdue, next
}

// equalTimePtr сравнивает опциональные даты
func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
