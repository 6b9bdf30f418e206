package handlers

import (
	"errors"
	"net/http"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"go.uber.org/zap"
)

// respondDomainError переводит ошибки движка рассрочки в HTTP статусы:
// ошибки валидации — 400/422, конфликты состояния — 409, отсутствие — 404,
// права — 403, остальное — 500 с логированием.
func respondDomainError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, domain.ErrInstallmentNotAvailable),
		errors.Is(err, domain.ErrInstallmentWindowClosed),
		errors.Is(err, domain.ErrInstallmentMisconfigured),
		errors.Is(err, domain.ErrFirstPaymentBelowMinimum),
		errors.Is(err, domain.ErrFirstPaymentExceedsTotal),
		errors.Is(err, domain.ErrGuarantorRequired):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

	case errors.Is(err, domain.ErrCustomerRestricted),
		errors.Is(err, domain.ErrNotOrderCustomer),
		errors.Is(err, domain.ErrNotOrderSeller):
		http.Error(w, err.Error(), http.StatusForbidden)

	case errors.Is(err, domain.ErrInvalidOrderState),
		errors.Is(err, domain.ErrInvalidTrancheState),
		errors.Is(err, domain.ErrSaleNotConfirmed),
		errors.Is(err, domain.ErrEarlierTrancheUnresolved),
		errors.Is(err, domain.ErrProofAmountMismatch),
		errors.Is(err, domain.ErrProofIncomplete),
		errors.Is(err, domain.ErrVersionConflict):
		http.Error(w, err.Error(), http.StatusConflict)

	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrTrancheNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)

	default:
		logger.Error("unexpected error", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
