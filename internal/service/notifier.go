package service

import (
	"context"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"go.uber.org/zap"
)

// Notifier реализует domain.Notifier поверх outbox-таблицы.
// Запись выполняется синхронно с переходом состояния, но сбой записи
// только логируется: уведомление консультативно, финансовая запись
// авторитетна и не откатывается.
type Notifier struct {
	repo   domain.NotificationRepository
	logger *zap.Logger
}

// NewNotifier создает новый Notifier
func NewNotifier(repo domain.NotificationRepository, logger *zap.Logger) *Notifier {
	return &Notifier{
		repo:   repo,
		logger: logger,
	}
}

// Notify записывает уведомление в outbox best-effort
func (n *Notifier) Notify(ctx context.Context, recipientID, actorID int64, notType string, metadata map[string]any) {
	notification := &domain.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Type:        notType,
		Metadata:    metadata,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		n.logger.Error("failed to create notification",
			zap.Int64("recipient", recipientID),
			zap.String("type", notType),
			zap.Error(err),
		)
	}
}
