package domain

import (
	"context"
	"time"
)

// OrderRepository определяет методы для работы с заказами в рассрочку
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	UpdateOrder(ctx context.Context, order *Order) error
	GetServicedInstallmentOrders(ctx context.Context) ([]*Order, error)
	GetCustomerHistory(ctx context.Context, customerID int64) (*CustomerHistory, error)
	GetSellerInstallmentSummary(ctx context.Context, sellerID int64) ([]*StatusSummary, error)
}

// ProductRepository определяет методы доступа к конфигурации рассрочки товара
type ProductRepository interface {
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	SuspendInstallments(ctx context.Context, productID int64, at time.Time) (bool, error)
	RecalculateSalesCount(ctx context.Context, productID int64) error
}

// CartRepository определяет методы работы с корзиной покупателя
type CartRepository interface {
	RemoveItem(ctx context.Context, customerID, productID int64) error
}

// NotificationRepository определяет методы работы с outbox уведомлений
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	GetUnsentNotifications(ctx context.Context, limit int) ([]*Notification, error)
	MarkNotificationSent(ctx context.Context, id int64) error
}

// RestrictionChecker определяет проверку права пользователя оформлять заказы
type RestrictionChecker interface {
	IsRestricted(ctx context.Context, userID int64) (bool, error)
}

// Notifier определяет best-effort создание уведомлений.
// Ошибки записи логируются и никогда не откатывают владеющий переход.
type Notifier interface {
	Notify(ctx context.Context, recipientID, actorID int64, notType string, metadata map[string]any)
}

// NotificationDispatcher определяет доставку уведомления внешнему диспетчеру
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n *Notification) error
}

// EligibilityService определяет скоринг покупателя
type EligibilityService interface {
	Score(ctx context.Context, customerID int64) (*EligibilityResult, error)
}

// CheckoutRequest представляет запрос оформления рассрочки
type CheckoutRequest struct {
	ProductID    int64             `json:"productId" validate:"required,gt=0"`
	Quantity     int               `json:"quantity" validate:"required,gt=0"`
	FirstPayment float64           `json:"firstPayment" validate:"required,gt=0"`
	Proof        *TransactionProof `json:"transactionProof" validate:"required"`
	Guarantor    *Guarantor        `json:"guarantor,omitempty"`
}

// PlanService определяет жизненный цикл плана рассрочки
type PlanService interface {
	Checkout(ctx context.Context, customerID int64, req *CheckoutRequest) (*Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*Order, error)
	SubmitTrancheProof(ctx context.Context, customerID, orderID int64, index int, proof *TransactionProof) (*Order, error)
	ConfirmSale(ctx context.Context, sellerID, orderID int64) (*Order, error)
	RejectSale(ctx context.Context, sellerID, orderID int64, reason string) (*Order, error)
	ValidateTranche(ctx context.Context, sellerID, orderID int64, index int) (*Order, error)
	RejectTranche(ctx context.Context, sellerID, orderID int64, index int) (*Order, error)
}

// AnalyticsService определяет агрегатную аналитику продавца
type AnalyticsService interface {
	SellerSummary(ctx context.Context, sellerID int64) ([]*StatusSummary, error)
}
