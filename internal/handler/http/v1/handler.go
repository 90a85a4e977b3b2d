package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/alert_sync_client/internal/api"
	"github.com/shenikar/alert_sync_client/internal/auth"
	"github.com/shenikar/alert_sync_client/internal/config"
	"github.com/shenikar/alert_sync_client/internal/gateway"
	"github.com/shenikar/alert_sync_client/internal/service"
	"github.com/sirupsen/logrus"
)

// Handler - локальная HTTP-поверхность ядра для UI-потребителей:
// экраны читают состояние и отправляют мутации, но никогда не пишут
// в коллекции напрямую
type Handler struct {
	syncService service.SyncService
	gateway     gateway.Gateway
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(syncService service.SyncService, gw gateway.Gateway, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		syncService: syncService,
		gateway:     gw,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

func (h *Handler) listAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToAlertResponses(h.syncService.Alerts()))
}

func (h *Handler) activeAlert(c *gin.Context) {
	c.JSON(http.StatusOK, ActiveAlertResponse{Active: h.syncService.ActiveAlert()})
}

func (h *Handler) alertStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsToResponse(h.syncService.Stats()))
}

func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToNotificationResponses(h.syncService.Notifications()))
}

func (h *Handler) listProfessionals(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToProfessionalResponses(h.syncService.Professionals()))
}

func (h *Handler) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, RollupToResponse(h.syncService.Rollup()))
}

func (h *Handler) alertSelection(c *gin.Context) {
	c.JSON(http.StatusOK, AlertSelectionToResponse(h.syncService.AlertSelection()))
}

func (h *Handler) selectAlert(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert ID required"})
		return
	}
	h.syncService.SelectAlert(id)
	c.JSON(http.StatusOK, AlertSelectionToResponse(h.syncService.AlertSelection()))
}

func (h *Handler) closeAlertSelection(c *gin.Context) {
	h.syncService.CloseAlert()
	c.Status(http.StatusNoContent)
}

func (h *Handler) professionalSelection(c *gin.Context) {
	c.JSON(http.StatusOK, ProfessionalSelectionToResponse(h.syncService.ProfessionalSelection()))
}

func (h *Handler) selectProfessional(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "professional ID required"})
		return
	}
	h.syncService.SelectProfessional(id)
	c.JSON(http.StatusOK, ProfessionalSelectionToResponse(h.syncService.ProfessionalSelection()))
}

func (h *Handler) closeProfessionalSelection(c *gin.Context) {
	h.syncService.CloseProfessional()
	c.Status(http.StatusNoContent)
}

func (h *Handler) createEmergency(c *gin.Context) {
	var input CreateEmergencyRequest
	log := h.logger.WithField("method", "createEmergency")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var loc *gateway.Location
	if input.Latitude != nil && input.Longitude != nil && input.Accuracy != nil {
		loc = &gateway.Location{
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
			Accuracy:  *input.Accuracy,
		}
	}

	notified, err := h.gateway.CreateEmergency(c.Request.Context(), loc, input.Message)
	if err != nil {
		h.writeMutateError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreateEmergencyResponse{NotifiedCount: notified})
}

func (h *Handler) processAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "processAlert").WithField("alert_id", id)

	if err := h.gateway.MarkProcessed(c.Request.Context(), id); err != nil {
		h.writeMutateError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) sendAlertMessage(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "sendAlertMessage").WithField("alert_id", id)

	var input SendMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.gateway.SendMessage(c.Request.Context(), id, input.Text); err != nil {
		h.writeMutateError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) markNotificationRead(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "markNotificationRead").WithField("notification_id", id)

	if err := h.gateway.MarkRead(c.Request.Context(), id); err != nil {
		h.writeMutateError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) setUser(c *gin.Context) {
	var input SetUserRequest
	log := h.logger.WithField("method", "setUser")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.syncService.SetUser(input.UserID)
	c.Status(http.StatusOK)
}

func (h *Handler) forceRefresh(c *gin.Context) {
	h.syncService.ForceRefresh()
	c.Status(http.StatusAccepted)
}

func (h *Handler) healthCheck(c *gin.Context) {
	resp := HealthResponse{Status: "ok", SessionExpired: h.syncService.SessionExpired()}
	if err := h.syncService.SyncError(); err != nil {
		resp.Status = "degraded"
		resp.SyncError = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// writeMutateError переводит ошибку мутации в HTTP-ответ. Сообщение сервера
// передается потребителю дословно; мутации не ретраятся.
func (h *Handler) writeMutateError(c *gin.Context, log *logrus.Entry, err error) {
	var apiErr *api.Error

	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		log.Warn("Mutation rejected: session expired")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
	case errors.Is(err, gateway.ErrLocationUnavailable):
		log.Warn("Mutation rejected: no device location")
		c.JSON(http.StatusBadRequest, gin.H{"error": gateway.ErrLocationUnavailable.Error()})
	case errors.As(err, &apiErr):
		log.WithError(err).Warn("Backend rejected mutation")
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message})
	default:
		log.WithError(err).Error("Mutation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
