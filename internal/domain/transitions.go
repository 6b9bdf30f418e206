package domain

// Таблица допустимых переходов статусов заказа.
// pending_installment -> installment_active | cancelled
// installment_active <-> overdue_installment, оба -> completed.
// cancelled достижим только из pending_installment.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingInstallment: {OrderStatusInstallmentActive, OrderStatusCancelled},
	OrderStatusInstallmentActive:  {OrderStatusOverdueInstallment, OrderStatusCompleted},
	OrderStatusOverdueInstallment: {OrderStatusInstallmentActive, OrderStatusCompleted},
	OrderStatusCompleted:          {},
	OrderStatusCancelled:          {},
}

// Таблица допустимых переходов статусов взноса.
// Движение только вперед, единственный откат — отклонение продавцом
// загруженного подтверждения (proof_uploaded -> pending).
var trancheTransitions = map[TrancheStatus][]TrancheStatus{
	TrancheStatusPending:       {TrancheStatusProofUploaded, TrancheStatusOverdue, TrancheStatusWaived},
	TrancheStatusProofUploaded: {TrancheStatusPaid, TrancheStatusPending},
	TrancheStatusOverdue:       {TrancheStatusProofUploaded, TrancheStatusPaid, TrancheStatusWaived},
	TrancheStatusPaid:          {},
	TrancheStatusWaived:        {},
}

// CanTransitionOrder проверяет допустимость перехода статуса заказа
func CanTransitionOrder(from, to OrderStatus) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransitionTranche проверяет допустимость перехода статуса взноса
func CanTransitionTranche(from, to TrancheStatus) bool {
	for _, s := range trancheTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionOrder переводит заказ в новый статус.
// Единственная точка мутации статуса заказа: недопустимый переход
// возвращает ErrInvalidOrderState и оставляет заказ нетронутым.
func TransitionOrder(order *Order, to OrderStatus) error {
	if !CanTransitionOrder(order.Status, to) {
		return ErrInvalidOrderState
	}
	order.Status = to
	return nil
}

// TransitionTranche переводит взнос в новый статус.
// Единственная точка мутации статуса взноса: недопустимый переход
// возвращает ErrInvalidTrancheState и оставляет взнос нетронутым.
func TransitionTranche(t *Tranche, to TrancheStatus) error {
	if !CanTransitionTranche(t.Status, to) {
		return ErrInvalidTrancheState
	}
	t.Status = to
	return nil
}
