package postgres

import (
	"context"
	"fmt"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
)

// NotificationRepository реализует domain.NotificationRepository (outbox)
type NotificationRepository struct {
	db DBTX
}

// NewNotificationRepository создает новый NotificationRepository
func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateNotification записывает уведомление в outbox
func (r *NotificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO notifications (recipient_id, actor_id, type, metadata)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		n.RecipientID, n.ActorID, n.Type, n.Metadata,
	).Scan(&n.ID, &n.CreatedAt)

	if err != nil {
		return fmt.Errorf("repository: failed to create notification: %w", err)
	}

	return nil
}

// GetUnsentNotifications получает порцию неотправленных уведомлений
// в порядке создания
func (r *NotificationRepository) GetUnsentNotifications(ctx context.Context, limit int) ([]*domain.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, recipient_id, actor_id, type, metadata, created_at
		 FROM notifications
		 WHERE sent_at IS NULL
		 ORDER BY created_at ASC
		 LIMIT $1`,
		limit,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get unsent notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n := &domain.Notification{}
		err := rows.Scan(&n.ID, &n.RecipientID, &n.ActorID, &n.Type, &n.Metadata, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating notifications: %w", err)
	}

	return notifications, nil
}

// MarkNotificationSent помечает уведомление доставленным
func (r *NotificationRepository) MarkNotificationSent(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications
		 SET sent_at = now()
		 WHERE id = $1`,
		id,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to mark notification %d sent: %w", id, err)
	}

	return nil
}
