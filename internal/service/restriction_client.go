package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
)

// HTTPRestrictionClient реализует domain.RestrictionChecker поверх
// внешнего сервиса ограничений
type HTTPRestrictionClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRestrictionClient создает новый клиент сервиса ограничений.
// Пустой адрес означает отсутствие сервиса: никто не ограничен.
func NewRestrictionClient(baseURL string) domain.RestrictionChecker {
	return &HTTPRestrictionClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsRestricted сообщает, запрещено ли пользователю оформлять заказы
func (c *HTTPRestrictionClient) IsRestricted(ctx context.Context, userID int64) (bool, error) {
	if c.baseURL == "" {
		return false, nil
	}

	url := fmt.Sprintf("%s/api/users/%d/restriction", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("restriction client: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("restriction client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body struct {
			Restricted bool `json:"restricted"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false, fmt.Errorf("restriction client: failed to decode response: %w", err)
		}
		return body.Restricted, nil

	case http.StatusNoContent, http.StatusNotFound:
		// Запись об ограничении отсутствует
		return false, nil

	default:
		return false, fmt.Errorf("restriction client: unexpected status code: %d", resp.StatusCode)
	}
}
