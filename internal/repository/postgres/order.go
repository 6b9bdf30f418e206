package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"github.com/jackc/pgx/v5"
)

// OrderRepository реализует domain.OrderRepository.
// План рассрочки хранится как JSONB внутри строки заказа: взносы адресуются
// индексом и мутируют только вместе со всем агрегатом.
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder создает новый заказ в рассрочку
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (customer_id, seller_id, status, items, total_amount, paid_amount, remaining_amount, installment_plan)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, version, created_at, updated_at`,
		order.CustomerID, order.SellerID, order.Status, order.Items,
		order.TotalAmount, order.PaidAmount, order.RemainingAmount, order.Plan,
	).Scan(&order.ID, &order.Version, &order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create order: %w", err)
	}

	return order, nil
}

// GetOrderByID получает заказ по идентификатору
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order := &domain.Order{}

	err := r.db.QueryRow(ctx,
		`SELECT id, customer_id, seller_id, status, items, total_amount, paid_amount, remaining_amount, installment_plan, version, created_at, updated_at
		 FROM orders
		 WHERE id = $1`,
		id,
	).Scan(&order.ID, &order.CustomerID, &order.SellerID, &order.Status, &order.Items,
		&order.TotalAmount, &order.PaidAmount, &order.RemainingAmount, &order.Plan,
		&order.Version, &order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	return order, nil
}

// UpdateOrder сохраняет заказ conditional update'ом по версии.
// Конкурентная запись (например, гонка сверки и запроса покупателя)
// возвращает ErrVersionConflict вместо тихой потери изменений.
func (r *OrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $1, paid_amount = $2, remaining_amount = $3, installment_plan = $4,
		     version = version + 1, updated_at = now()
		 WHERE id = $5 AND version = $6`,
		order.Status, order.PaidAmount, order.RemainingAmount, order.Plan,
		order.ID, order.Version,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to update order %d: %w", order.ID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}

	order.Version++

	return nil
}

// GetServicedInstallmentOrders получает подтвержденные заказы в обслуживании
// для фоновой сверки
func (r *OrderRepository) GetServicedInstallmentOrders(ctx context.Context) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_id, seller_id, status, items, total_amount, paid_amount, remaining_amount, installment_plan, version, created_at, updated_at
		 FROM orders
		 WHERE status IN ($1, $2)
		   AND installment_plan->>'saleConfirmationConfirmedAt' IS NOT NULL
		 ORDER BY id ASC`,
		domain.OrderStatusInstallmentActive, domain.OrderStatusOverdueInstallment,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get serviced installment orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order := &domain.Order{}
		err := rows.Scan(&order.ID, &order.CustomerID, &order.SellerID, &order.Status, &order.Items,
			&order.TotalAmount, &order.PaidAmount, &order.RemainingAmount, &order.Plan,
			&order.Version, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating serviced orders: %w", err)
	}

	return orders, nil
}

// GetCustomerHistory получает агрегаты истории заказов покупателя
// для скоринга
func (r *OrderRepository) GetCustomerHistory(ctx context.Context, customerID int64) (*domain.CustomerHistory, error) {
	history := &domain.CustomerHistory{}

	err := r.db.QueryRow(ctx,
		`SELECT
			COUNT(*) FILTER (WHERE status <> 'draft'),
			COUNT(*) FILTER (WHERE status = 'delivered'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COUNT(*) FILTER (WHERE status = 'completed' AND installment_plan IS NOT NULL),
			COUNT(*) FILTER (WHERE status = 'overdue_installment')
		 FROM orders
		 WHERE customer_id = $1`,
		customerID,
	).Scan(&history.TotalOrders, &history.DeliveredOrders, &history.CancelledOrders,
		&history.CompletedInstallments, &history.OverdueInstallments)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get history for customer %d: %w", customerID, err)
	}

	return history, nil
}

// GetSellerInstallmentSummary получает агрегаты заказов продавца
// по статусам рассрочки
func (r *OrderRepository) GetSellerInstallmentSummary(ctx context.Context, sellerID int64) ([]*domain.StatusSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*),
		        COALESCE(SUM(total_amount), 0),
		        COALESCE(SUM(paid_amount), 0),
		        COALESCE(SUM(remaining_amount), 0)
		 FROM orders
		 WHERE seller_id = $1 AND installment_plan IS NOT NULL
		 GROUP BY status
		 ORDER BY status`,
		sellerID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get summary for seller %d: %w", sellerID, err)
	}
	defer rows.Close()

	var summary []*domain.StatusSummary
	for rows.Next() {
		s := &domain.StatusSummary{}
		err := rows.Scan(&s.Status, &s.Count, &s.TotalAmount, &s.PaidAmount, &s.RemainingAmount)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan summary row: %w", err)
		}
		summary = append(summary, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating summary rows: %w", err)
	}

	return summary, nil
}
