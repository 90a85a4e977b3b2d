package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/alert_sync_client/internal/auth"
	"github.com/shenikar/alert_sync_client/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrLocationUnavailable возвращается, когда у экстренного запроса нет
// геопозиции: без разрешения на геолокацию операция падает до любого
// сетевого вызова
var ErrLocationUnavailable = errors.New("device location is unavailable")

// BackendDispatcher определяет контракт мутирующей поверхности бэкенда
type BackendDispatcher interface {
	CreateEmergency(ctx context.Context, req models.EmergencyRequest) (string, int, error)
	ProcessAlert(ctx context.Context, alertID string) error
	SendAlertMessage(ctx context.Context, alertID, text string) error
	MarkNotificationRead(ctx context.Context, notificationID string) error
}

// StateFolder определяет контракт оптимистичного вката результата мутации
// в коллекции ядра, не дожидаясь следующего тика опроса
type StateFolder interface {
	FoldAlertCreated(alert models.Alert)
	FoldAlertStatus(id, status string)
	FoldAlertMessage(id, text string)
	FoldNotificationRead(id string)
}

// Location - геопозиция устройства на момент создания экстренного запроса
type Location struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// Gateway - шлюз мутаций. Мутации отправляются ровно один раз:
// в отличие от читающего пути, ретраев здесь нет, ошибка уходит
// вызывающему как есть, состояние при ошибке не трогается.
type Gateway interface {
	CreateEmergency(ctx context.Context, loc *Location, message string) (int, error)
	MarkProcessed(ctx context.Context, alertID string) error
	SendMessage(ctx context.Context, alertID, text string) error
	MarkRead(ctx context.Context, notificationID string) error
}

type mutateGateway struct {
	api    BackendDispatcher
	state  StateFolder
	tokens auth.TokenProvider
	logger *logrus.Logger
}

func NewGateway(api BackendDispatcher, state StateFolder, tokens auth.TokenProvider, logger *logrus.Logger) Gateway {
	return &mutateGateway{
		api:    api,
		state:  state,
		tokens: tokens,
		logger: logger,
	}
}

// CreateEmergency создает экстренную тревогу и возвращает количество
// оповещенных специалистов (fan-out)
func (g *mutateGateway) CreateEmergency(ctx context.Context, loc *Location, message string) (int, error) {
	log := g.logger.WithFields(logrus.Fields{
		"gateway": "mutate",
		"method":  "CreateEmergency",
	})

	if _, err := g.tokens.Token(); err != nil {
		log.Warn("Emergency create attempted without a valid session")
		return 0, err
	}
	if loc == nil {
		log.Warn("Emergency create attempted without device location")
		return 0, ErrLocationUnavailable
	}

	req := models.EmergencyRequest{
		ClientRef: uuid.NewString(),
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Accuracy:  loc.Accuracy,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	alertID, notified, err := g.api.CreateEmergency(ctx, req)
	if err != nil {
		log.WithError(err).Error("Failed to create emergency alert")
		return 0, fmt.Errorf("gateway: could not create emergency alert: %w", err)
	}

	g.state.FoldAlertCreated(models.Alert{
		ID:        alertID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Status:    models.AlertStatusActive,
		CreatedAt: req.CreatedAt,
	})

	log.WithFields(logrus.Fields{"alert_id": alertID, "notified": notified}).Info("Emergency alert created")
	return notified, nil
}

// MarkProcessed отмечает тревогу обработанной и сразу отражает это локально
func (g *mutateGateway) MarkProcessed(ctx context.Context, alertID string) error {
	log := g.logger.WithFields(logrus.Fields{
		"gateway":  "mutate",
		"method":   "MarkProcessed",
		"alert_id": alertID,
	})

	if _, err := g.tokens.Token(); err != nil {
		log.Warn("Mutation attempted without a valid session")
		return err
	}

	if err := g.api.ProcessAlert(ctx, alertID); err != nil {
		log.WithError(err).Error("Failed to mark alert processed")
		return fmt.Errorf("gateway: could not mark alert processed: %w", err)
	}

	g.state.FoldAlertStatus(alertID, models.AlertStatusProcessed)
	log.Info("Alert marked processed")
	return nil
}

// SendMessage отправляет сообщение по тревоге
func (g *mutateGateway) SendMessage(ctx context.Context, alertID, text string) error {
	log := g.logger.WithFields(logrus.Fields{
		"gateway":  "mutate",
		"method":   "SendMessage",
		"alert_id": alertID,
	})

	if _, err := g.tokens.Token(); err != nil {
		log.Warn("Mutation attempted without a valid session")
		return err
	}

	if err := g.api.SendAlertMessage(ctx, alertID, text); err != nil {
		log.WithError(err).Error("Failed to send alert message")
		return fmt.Errorf("gateway: could not send alert message: %w", err)
	}

	g.state.FoldAlertMessage(alertID, text)
	log.Info("Alert message sent")
	return nil
}

// MarkRead отмечает уведомление прочитанным и сразу отражает это локально
func (g *mutateGateway) MarkRead(ctx context.Context, notificationID string) error {
	log := g.logger.WithFields(logrus.Fields{
		"gateway":         "mutate",
		"method":          "MarkRead",
		"notification_id": notificationID,
	})

	if _, err := g.tokens.Token(); err != nil {
		log.Warn("Mutation attempted without a valid session")
		return err
	}

	if err := g.api.MarkNotificationRead(ctx, notificationID); err != nil {
		log.WithError(err).Error("Failed to mark notification read")
		return fmt.Errorf("gateway: could not mark notification read: %w", err)
	}

	g.state.FoldNotificationRead(notificationID)
	log.Info("Notification marked read")
	return nil
}
