package domain

import "time"

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPendingInstallment OrderStatus = "pending_installment"
	OrderStatusInstallmentActive  OrderStatus = "installment_active"
	OrderStatusOverdueInstallment OrderStatus = "overdue_installment"
	OrderStatusCompleted          OrderStatus = "completed"
	OrderStatusCancelled          OrderStatus = "cancelled"
)

// TrancheStatus представляет статус отдельного взноса графика
type TrancheStatus string

const (
	TrancheStatusPending       TrancheStatus = "pending"
	TrancheStatusProofUploaded TrancheStatus = "proof_uploaded"
	TrancheStatusPaid          TrancheStatus = "paid"
	TrancheStatusOverdue       TrancheStatus = "overdue"
	TrancheStatusWaived        TrancheStatus = "waived"
)

// RiskLevel представляет уровень риска покупателя
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// TransactionProof представляет заявленное подтверждение перевода.
// Это не верифицированный callback платежного шлюза, а утверждение покупателя,
// которое продавец проверяет вручную.
type TransactionProof struct {
	Sender    string  `json:"sender" validate:"required"`
	Reference string  `json:"reference" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

// Tranche представляет один запланированный взнос рассрочки.
// Взносы создаются один раз при оформлении и никогда не удаляются,
// меняется только статус.
type Tranche struct {
	DueDate           time.Time         `json:"dueDate"`
	Amount            float64           `json:"amount"`
	Status            TrancheStatus     `json:"status"`
	TransactionProof  *TransactionProof `json:"transactionProof,omitempty"`
	PenaltyAmount     float64           `json:"penaltyAmount"`
	ValidatedBy       *int64            `json:"validatedBy,omitempty"`
	ValidatedAt       *time.Time        `json:"validatedAt,omitempty"`
	ReminderSentAt    *time.Time        `json:"reminderSentAt,omitempty"`
	OverdueNotifiedAt *time.Time        `json:"overdueNotifiedAt,omitempty"`
}

// Resolved сообщает, закрыт ли взнос окончательно
func (t *Tranche) Resolved() bool {
	return t.Status == TrancheStatusPaid || t.Status == TrancheStatusWaived
}

// Guarantor представляет поручителя, обязательного для части товаров
type Guarantor struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Relation string `json:"relation" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

// InstallmentPlan представляет план рассрочки, встроенный в заказ (1:1).
// overdueCount, totalPenaltyAccrued и nextDueDate — кешированные агрегаты,
// всегда пересчитываемые из schedule.
type InstallmentPlan struct {
	TotalAmount         float64    `json:"totalAmount"`
	AmountPaid          float64    `json:"amountPaid"`
	RemainingAmount     float64    `json:"remainingAmount"`
	Schedule            []Tranche  `json:"schedule"`
	EligibilityScore    int        `json:"eligibilityScore"`
	RiskLevel           RiskLevel  `json:"riskLevel"`
	SaleConfirmedAt     *time.Time `json:"saleConfirmationConfirmedAt,omitempty"`
	SaleConfirmedBy     *int64     `json:"saleConfirmationConfirmedBy,omitempty"`
	OverdueCount        int        `json:"overdueCount"`
	TotalPenaltyAccrued float64    `json:"totalPenaltyAccrued"`
	NextDueDate         *time.Time `json:"nextDueDate,omitempty"`
	Guarantor           *Guarantor `json:"guarantor,omitempty"`
	CancelReason        string     `json:"cancelReason,omitempty"`
}

// SaleConfirmed сообщает, подтвердил ли продавец первоначальный платеж
func (p *InstallmentPlan) SaleConfirmed() bool {
	return p.SaleConfirmedAt != nil
}

// OrderItem представляет позицию заказа со снимком цены и магазина,
// сделанным на момент оформления
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ShopID    int64   `json:"shopId"`
}

// Order представляет заказ в рассрочку (корневой агрегат).
// Version используется для conditional update, чтобы фоновая сверка
// и пользовательские запросы не перетирали изменения друг друга.
type Order struct {
	ID              int64            `json:"id"`
	CustomerID      int64            `json:"customer"`
	SellerID        int64            `json:"seller"`
	Items           []OrderItem      `json:"items"`
	Status          OrderStatus      `json:"status"`
	TotalAmount     float64          `json:"totalAmount"`
	PaidAmount      float64          `json:"paidAmount"`
	RemainingAmount float64          `json:"remainingAmount"`
	Plan            *InstallmentPlan `json:"installmentPlan,omitempty"`
	Version         int64            `json:"-"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Product представляет конфигурацию рассрочки товара.
// Товаром владеет каталог; движок рассрочки читает конфигурацию и выполняет
// единственную запись — приостановку рассрочки после повторных просрочек.
type Product struct {
	ID                           int64      `json:"id"`
	SellerID                     int64      `json:"sellerId"`
	Name                         string     `json:"name"`
	Price                        float64    `json:"price"`
	SalesCount                   int        `json:"salesCount"`
	InstallmentEnabled           bool       `json:"installmentEnabled"`
	InstallmentMinAmount         float64    `json:"installmentMinAmount"`
	InstallmentDurationDays      int        `json:"installmentDuration"`
	InstallmentStartDate         *time.Time `json:"installmentStartDate,omitempty"`
	InstallmentEndDate           *time.Time `json:"installmentEndDate,omitempty"`
	InstallmentLatePenaltyRate   float64    `json:"installmentLatePenaltyRate"`
	InstallmentMaxMissedPayments int        `json:"installmentMaxMissedPayments"`
	InstallmentRequireGuarantor  bool       `json:"installmentRequireGuarantor"`
	InstallmentSuspendedAt       *time.Time `json:"installmentSuspendedAt,omitempty"`
}

// CustomerHistory представляет агрегаты истории заказов покупателя,
// по которым считается скоринг
type CustomerHistory struct {
	TotalOrders           int
	DeliveredOrders       int
	CancelledOrders       int
	CompletedInstallments int
	OverdueInstallments   int
}

// EligibilityResult представляет результат скоринга
type EligibilityResult struct {
	Score     int       `json:"eligibilityScore"`
	RiskLevel RiskLevel `json:"riskLevel"`
}

// Notification представляет запись исходящего уведомления (outbox).
// Запись создается синхронно с переходом состояния, доставка выполняется
// отдельно и не влияет на сам переход.
type Notification struct {
	ID          int64          `json:"id"`
	RecipientID int64          `json:"recipient"`
	ActorID     int64          `json:"actor"`
	Type        string         `json:"type"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	SentAt      *time.Time     `json:"sent_at,omitempty"`
}

// Типы уведомлений движка рассрочки
const (
	NotificationSaleConfirmationRequired = "installment_sale_confirmation_required"
	NotificationOrderCreated             = "installment_order_created"
	NotificationOrderCancelled           = "installment_order_cancelled"
	NotificationSaleConfirmed            = "installment_sale_confirmed"
	NotificationProofSubmitted           = "installment_proof_submitted"
	NotificationProofRejected            = "installment_proof_rejected"
	NotificationPaymentValidated         = "installment_payment_validated"
	NotificationPlanCompleted            = "installment_plan_completed"
	NotificationPaymentOverdue           = "installment_payment_overdue"
	NotificationPaymentReminder          = "installment_payment_reminder"
	NotificationOfferingSuspended        = "installment_offering_suspended"
)

// StatusSummary представляет агрегаты заказов продавца по одному статусу
type StatusSummary struct {
	Status          OrderStatus `json:"status"`
	Count           int64       `json:"count"`
	TotalAmount     float64     `json:"totalAmount"`
	PaidAmount      float64     `json:"paidAmount"`
	RemainingAmount float64     `json:"remainingAmount"`
}
