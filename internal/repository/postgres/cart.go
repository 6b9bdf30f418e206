package postgres

import (
	"context"
	"fmt"
)

// CartRepository реализует domain.CartRepository
type CartRepository struct {
	db DBTX
}

// NewCartRepository создает новый CartRepository
func NewCartRepository(db DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// RemoveItem удаляет купленный товар из корзины покупателя.
// Отсутствие строки не является ошибкой: товар мог попасть в заказ
// минуя корзину.
func (r *CartRepository) RemoveItem(ctx context.Context, customerID, productID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM cart_items
		 WHERE customer_id = $1 AND product_id = $2`,
		customerID, productID,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to remove cart item for customer %d: %w", customerID, err)
	}

	return nil
}
