package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_CreateNotification(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNotificationRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		n := &domain.Notification{
			RecipientID: 1,
			ActorID:     2,
			Type:        domain.NotificationPaymentOverdue,
			Metadata:    map[string]any{"orderId": int64(100)},
		}
		now := time.Now()

		rows := pgxmock.NewRows([]string{"id", "created_at"}).
			AddRow(int64(5), now)

		mock.ExpectQuery(`INSERT INTO notifications`).
			WithArgs(n.RecipientID, n.ActorID, n.Type, n.Metadata).
			WillReturnRows(rows)

		err := repo.CreateNotification(ctx, n)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n.ID)
		assert.Equal(t, now, n.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		n := &domain.Notification{
			RecipientID: 1,
			Type:        domain.NotificationOrderCreated,
		}

		mock.ExpectQuery(`INSERT INTO notifications`).
			WithArgs(n.RecipientID, n.ActorID, n.Type, n.Metadata).
			WillReturnError(errors.New("connection refused"))

		err := repo.CreateNotification(ctx, n)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationRepository_GetUnsentNotifications(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNotificationRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		rows := pgxmock.NewRows([]string{"id", "recipient_id", "actor_id", "type", "metadata", "created_at"}).
			AddRow(int64(1), int64(1), int64(2), domain.NotificationPaymentOverdue, map[string]any{"orderId": int64(100)}, now).
			AddRow(int64(2), int64(2), int64(1), domain.NotificationProofSubmitted, map[string]any(nil), now)

		mock.ExpectQuery(`SELECT (.+) FROM notifications\s+WHERE sent_at IS NULL`).
			WithArgs(10).
			WillReturnRows(rows)

		notifications, err := repo.GetUnsentNotifications(ctx, 10)
		require.NoError(t, err)
		require.Len(t, notifications, 2)
		assert.Equal(t, int64(1), notifications[0].ID)
		assert.Equal(t, domain.NotificationPaymentOverdue, notifications[0].Type)
		assert.Equal(t, domain.NotificationProofSubmitted, notifications[1].Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty batch", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "recipient_id", "actor_id", "type", "metadata", "created_at"})

		mock.ExpectQuery(`SELECT (.+) FROM notifications\s+WHERE sent_at IS NULL`).
			WithArgs(10).
			WillReturnRows(rows)

		notifications, err := repo.GetUnsentNotifications(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, notifications)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM notifications\s+WHERE sent_at IS NULL`).
			WithArgs(10).
			WillReturnError(errors.New("connection refused"))

		notifications, err := repo.GetUnsentNotifications(ctx, 10)
		assert.Error(t, err)
		assert.Nil(t, notifications)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationRepository_MarkNotificationSent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNotificationRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE notifications`).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkNotificationSent(ctx, 5)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE notifications`).
			WithArgs(int64(5)).
			WillReturnError(errors.New("connection refused"))

		err := repo.MarkNotificationSent(ctx, 5)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartRepository_RemoveItem(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCartRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cart_items`).
			WithArgs(int64(1), int64(10)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.RemoveItem(ctx, 1, 10)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No row is not an error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cart_items`).
			WithArgs(int64(1), int64(10)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.RemoveItem(ctx, 1, 10)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
