package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ProductRepository реализует domain.ProductRepository.
// Движок рассрочки читает конфигурацию товара; единственные записи —
// приостановка рассрочки и пересчет счетчика продаж.
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetProductByID получает товар с конфигурацией рассрочки
func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	product := &domain.Product{}

	err := r.db.QueryRow(ctx,
		`SELECT id, seller_id, name, price, sales_count,
		        installment_enabled, installment_min_amount, installment_duration_days,
		        installment_start_date, installment_end_date, installment_late_penalty_rate,
		        installment_max_missed_payments, installment_require_guarantor, installment_suspended_at
		 FROM products
		 WHERE id = $1`,
		id,
	).Scan(&product.ID, &product.SellerID, &product.Name, &product.Price, &product.SalesCount,
		&product.InstallmentEnabled, &product.InstallmentMinAmount, &product.InstallmentDurationDays,
		&product.InstallmentStartDate, &product.InstallmentEndDate, &product.InstallmentLatePenaltyRate,
		&product.InstallmentMaxMissedPayments, &product.InstallmentRequireGuarantor, &product.InstallmentSuspendedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %d: %w", id, err)
	}

	return product, nil
}

// SuspendInstallments отключает рассрочку товара после повторных просрочек.
// Условие installment_enabled делает операцию идемпотентной: повторный вызов
// ничего не меняет и возвращает false.
func (r *ProductRepository) SuspendInstallments(ctx context.Context, productID int64, at time.Time) (bool, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE products
		 SET installment_enabled = false, installment_suspended_at = $2
		 WHERE id = $1 AND installment_enabled`,
		productID, at,
	)

	if err != nil {
		return false, fmt.Errorf("repository: failed to suspend installments for product %d: %w", productID, err)
	}

	return result.RowsAffected() > 0, nil
}

// RecalculateSalesCount пересчитывает счетчик продаж товара
// по завершенным заказам
func (r *ProductRepository) RecalculateSalesCount(ctx context.Context, productID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE products p
		 SET sales_count = (
		     SELECT COALESCE(SUM((item->>'quantity')::INT), 0)
		     FROM orders o, jsonb_array_elements(o.items) item
		     WHERE o.status = 'completed' AND (item->>'productId')::BIGINT = p.id
		 )
		 WHERE p.id = $1`,
		productID,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to recalculate sales count for product %d: %w", productID, err)
	}

	return nil
}
