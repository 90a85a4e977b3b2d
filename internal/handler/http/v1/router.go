package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты локального API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Чтение состояния тревог и открытой карточки
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/active", h.activeAlert)
		alerts.GET("/stats", h.alertStats)
		alerts.GET("/selection", h.alertSelection)
		alerts.POST("/:id/select", h.selectAlert)
		alerts.DELETE("/selection", h.closeAlertSelection)
		alerts.POST("/:id/process", h.processAlert)
		alerts.POST("/:id/message", h.sendAlertMessage)
	}

	// Уведомления пользователя
	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:id/read", h.markNotificationRead)
	}

	// Административный список специалистов
	professionals := api.Group("/professionals")
	{
		professionals.GET("", h.listProfessionals)
		professionals.GET("/selection", h.professionalSelection)
		professionals.POST("/:id/select", h.selectProfessional)
		professionals.DELETE("/selection", h.closeProfessionalSelection)
	}

	// Экстренный запрос
	api.POST("/emergency", h.createEmergency)

	// Сводная статистика бэкенда
	api.GET("/dashboard", h.dashboard)

	// Сессия и принудительное обновление
	api.POST("/session/user", h.setUser)
	api.POST("/refresh", h.forceRefresh)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
