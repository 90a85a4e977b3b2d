package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/alert_sync_client/internal/auth"
	"github.com/shenikar/alert_sync_client/internal/models"
	"github.com/sirupsen/logrus"
)

// Error - ошибка, о которой сообщил сервер (не-2xx с телом).
// Сообщение сервера передается потребителю дословно.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// Client - HTTP-клиент REST-бэкенда с bearer-аутентификацией
// и валидацией ответов на границе сети
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenProvider
	validate   *validator.Validate
	logger     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens auth.TokenProvider, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:   tokens,
		validate: validator.New(),
		logger:   logger,
	}
}

// ListAlerts возвращает текущий список тревог
func (c *Client) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	var dtos []AlertDTO
	if err := c.doJSON(ctx, http.MethodGet, "/alerts", nil, &dtos); err != nil {
		return nil, err
	}

	alerts := make([]models.Alert, 0, len(dtos))
	for _, dto := range dtos {
		if err := c.validate.Struct(dto); err != nil {
			return nil, fmt.Errorf("api: invalid alert %q in response: %w", dto.ID, err)
		}
		alerts = append(alerts, DTOToAlertModel(dto))
	}
	return alerts, nil
}

// ActiveAlert возвращает флаг наличия активной тревоги текущего пользователя
func (c *Client) ActiveAlert(ctx context.Context) (bool, error) {
	var resp ActiveAlertResponse
	if err := c.doJSON(ctx, http.MethodGet, "/alerts/active", nil, &resp); err != nil {
		return false, err
	}
	return resp.Active, nil
}

// ListNotifications возвращает уведомления пользователя
func (c *Client) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	var dtos []NotificationDTO
	path := "/emergency/notifications/" + url.PathEscape(userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	notifications := make([]models.Notification, 0, len(dtos))
	for _, dto := range dtos {
		if err := c.validate.Struct(dto); err != nil {
			return nil, fmt.Errorf("api: invalid notification %q in response: %w", dto.ID, err)
		}
		notifications = append(notifications, DTOToNotificationModel(dto))
	}
	return notifications, nil
}

// ListProfessionals возвращает административный список специалистов
func (c *Client) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	var dtos []ProfessionalDTO
	if err := c.doJSON(ctx, http.MethodGet, "/professionals", nil, &dtos); err != nil {
		return nil, err
	}

	professionals := make([]models.Professional, 0, len(dtos))
	for _, dto := range dtos {
		if err := c.validate.Struct(dto); err != nil {
			return nil, fmt.Errorf("api: invalid professional %q in response: %w", dto.ID, err)
		}
		professionals = append(professionals, DTOToProfessionalModel(dto))
	}
	return professionals, nil
}

// DashboardStats возвращает сводную статистику бэкенда
func (c *Client) DashboardStats(ctx context.Context) (models.DashboardRollup, error) {
	var dto DashboardRollupDTO
	if err := c.doJSON(ctx, http.MethodGet, "/stats", nil, &dto); err != nil {
		return models.DashboardRollup{}, err
	}
	if err := c.validate.Struct(dto); err != nil {
		return models.DashboardRollup{}, fmt.Errorf("api: invalid dashboard rollup in response: %w", err)
	}
	return DTOToRollupModel(dto), nil
}

// CreateEmergency создает экстренную тревогу и возвращает id тревоги
// и количество оповещенных специалистов (fan-out)
func (c *Client) CreateEmergency(ctx context.Context, req models.EmergencyRequest) (string, int, error) {
	var resp CreateEmergencyResponse
	if err := c.doJSON(ctx, http.MethodPost, "/emergency/request", EmergencyModelToDTO(req), &resp); err != nil {
		return "", 0, err
	}
	if err := c.validate.Struct(resp); err != nil {
		return "", 0, fmt.Errorf("api: invalid emergency ack in response: %w", err)
	}
	return resp.AlertID, resp.NotifiedCount, nil
}

// ProcessAlert отмечает тревогу обработанной
func (c *Client) ProcessAlert(ctx context.Context, alertID string) error {
	path := "/alerts/" + url.PathEscape(alertID) + "/process"
	return c.doJSON(ctx, http.MethodPut, path, nil, nil)
}

// SendAlertMessage отправляет сообщение по тревоге
func (c *Client) SendAlertMessage(ctx context.Context, alertID, text string) error {
	path := "/alerts/" + url.PathEscape(alertID) + "/message"
	return c.doJSON(ctx, http.MethodPost, path, SendMessageRequest{Text: text}, nil)
}

// MarkNotificationRead отмечает уведомление прочитанным
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	path := "/emergency/notifications/" + url.PathEscape(notificationID) + "/read"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil)
}

// doJSON выполняет запрос с bearer-токеном и декодирует JSON-ответ.
// 401 и отсутствующий токен превращаются в auth.ErrUnauthenticated,
// прочие не-2xx - в *Error с дословным сообщением сервера.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	token, err := c.tokens.Token()
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("api: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.WithField("path", path).Warn("Backend rejected session token")
		return auth.ErrUnauthenticated
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{StatusCode: resp.StatusCode, Message: readServerMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("api: failed to decode response: %w", err)
		}
	}
	return nil
}

// readServerMessage достает сообщение об ошибке из тела ответа
func readServerMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}

	var wrapped struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Error != "" {
		return wrapped.Error
	}
	return strings.TrimSpace(string(raw))
}
