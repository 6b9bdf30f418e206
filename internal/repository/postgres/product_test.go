package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_GetProductByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		start := time.Now().AddDate(0, -1, 0)
		end := time.Now().AddDate(0, 1, 0)

		rows := pgxmock.NewRows([]string{"id", "seller_id", "name", "price", "sales_count",
			"installment_enabled", "installment_min_amount", "installment_duration_days",
			"installment_start_date", "installment_end_date", "installment_late_penalty_rate",
			"installment_max_missed_payments", "installment_require_guarantor", "installment_suspended_at"}).
			AddRow(int64(10), int64(2), "Телевизор", 15000.0, 7,
				true, 5000.0, 60,
				&start, &end, 5.0,
				3, false, (*time.Time)(nil))

		mock.ExpectQuery(`SELECT (.+) FROM products\s+WHERE id`).
			WithArgs(int64(10)).
			WillReturnRows(rows)

		product, err := repo.GetProductByID(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), product.ID)
		assert.Equal(t, int64(2), product.SellerID)
		assert.Equal(t, 15000.0, product.Price)
		assert.True(t, product.InstallmentEnabled)
		assert.Equal(t, 60, product.InstallmentDurationDays)
		assert.Equal(t, 5.0, product.InstallmentLatePenaltyRate)
		assert.Nil(t, product.InstallmentSuspendedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM products\s+WHERE id`).
			WithArgs(int64(999)).
			WillReturnError(pgx.ErrNoRows)

		product, err := repo.GetProductByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Nil(t, product)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_SuspendInstallments(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()
	at := time.Now()

	t.Run("Suspends enabled product", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products`).
			WithArgs(int64(10), at).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		suspended, err := repo.SuspendInstallments(ctx, 10, at)
		require.NoError(t, err)
		assert.True(t, suspended)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already suspended", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products`).
			WithArgs(int64(10), at).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		suspended, err := repo.SuspendInstallments(ctx, 10, at)
		require.NoError(t, err)
		assert.False(t, suspended)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products`).
			WithArgs(int64(10), at).
			WillReturnError(errors.New("connection refused"))

		suspended, err := repo.SuspendInstallments(ctx, 10, at)
		assert.Error(t, err)
		assert.False(t, suspended)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_RecalculateSalesCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products`).
			WithArgs(int64(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.RecalculateSalesCount(ctx, 10)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products`).
			WithArgs(int64(10)).
			WillReturnError(errors.New("connection refused"))

		err := repo.RecalculateSalesCount(ctx, 10)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
