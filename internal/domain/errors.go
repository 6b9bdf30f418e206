package domain

import "errors"

// Ошибки валидации: отклоняются до каких-либо мутаций
var (
	ErrInvalidInput             = errors.New("invalid input")
	ErrInstallmentNotAvailable  = errors.New("installment is not enabled for this product")
	ErrInstallmentWindowClosed  = errors.New("installment offering window is closed")
	ErrInstallmentMisconfigured = errors.New("installment duration is not configured for this product")
	ErrCustomerRestricted       = errors.New("customer is restricted from ordering")
	ErrFirstPaymentBelowMinimum = errors.New("first payment is below the configured minimum")
	ErrFirstPaymentExceedsTotal = errors.New("first payment exceeds the order total")
	ErrGuarantorRequired        = errors.New("guarantor with all required fields must be provided")
)

// Ошибки конфликтов состояния: запрошенный переход несовместим
// с текущим состоянием агрегата
var (
	ErrInvalidOrderState        = errors.New("order status does not allow this transition")
	ErrInvalidTrancheState      = errors.New("tranche status does not allow this transition")
	ErrSaleNotConfirmed         = errors.New("sale confirmation is required before servicing tranches")
	ErrEarlierTrancheUnresolved = errors.New("an earlier tranche is not paid or waived yet")
	ErrProofAmountMismatch      = errors.New("submitted amount does not match the tranche amount")
	ErrProofIncomplete          = errors.New("transaction proof must carry both sender and reference")
	ErrVersionConflict          = errors.New("order was modified concurrently")
)

// Ошибки отсутствия сущностей
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrTrancheNotFound = errors.New("tranche not found")
	ErrProductNotFound = errors.New("product not found")
)

// Ошибки прав доступа к заказу
var (
	ErrNotOrderCustomer = errors.New("order belongs to another customer")
	ErrNotOrderSeller   = errors.New("order is serviced by another seller")
)
