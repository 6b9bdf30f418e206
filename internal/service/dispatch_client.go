package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
)

// HTTPDispatchClient реализует domain.NotificationDispatcher поверх
// внешнего диспетчера уведомлений. Семантика at-least-once: запись outbox
// остается неотправленной до первой успешной доставки.
type HTTPDispatchClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDispatchClient создает новый клиент диспетчера уведомлений
func NewDispatchClient(baseURL string) domain.NotificationDispatcher {
	return &HTTPDispatchClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Dispatch доставляет одно уведомление диспетчеру
func (c *HTTPDispatchClient) Dispatch(ctx context.Context, n *domain.Notification) error {
	payload, err := json.Marshal(map[string]any{
		"recipient": n.RecipientID,
		"actor":     n.ActorID,
		"type":      n.Type,
		"metadata":  n.Metadata,
	})
	if err != nil {
		return fmt.Errorf("dispatch client: failed to marshal notification: %w", err)
	}

	url := fmt.Sprintf("%s/api/notifications", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("dispatch client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("dispatch client: unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
