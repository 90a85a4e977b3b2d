package v1

import (
	"github.com/shenikar/alert_sync_client/internal/models"
	"github.com/shenikar/alert_sync_client/internal/reconcile"
)

// ModelToAlertResponse преобразует доменную модель тревоги в DTO для ответа
func ModelToAlertResponse(model models.Alert) AlertResponse {
	return AlertResponse{
		ID:           model.ID,
		ReporterID:   model.ReporterID,
		ReporterName: model.ReporterName,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Accuracy:     model.Accuracy,
		Type:         model.Type,
		Status:       model.Status,
		LastMessage:  model.LastMessage,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []models.Alert) []AlertResponse {
	responses := make([]AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// ModelToNotificationResponse преобразует доменную модель уведомления в DTO
func ModelToNotificationResponse(model models.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        model.ID,
		Type:      model.Type,
		Content:   model.Content,
		Priority:  model.Priority,
		Read:      model.Read,
		CreatedAt: model.CreatedAt,
	}
	if model.Emergency != nil {
		resp.Emergency = &EmergencyRefResponse{
			ID:        model.Emergency.ID,
			Type:      model.Emergency.Type,
			Message:   model.Emergency.Message,
			Status:    model.Emergency.Status,
			CreatedAt: model.Emergency.CreatedAt,
		}
	}
	return resp
}

// ModelsToNotificationResponses преобразует слайс моделей в слайс DTO
func ModelsToNotificationResponses(models []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToNotificationResponse(model)
	}
	return responses
}

// ModelToProfessionalResponse преобразует доменную модель специалиста в DTO
func ModelToProfessionalResponse(model models.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:         model.ID,
		Name:       model.Name,
		Specialty:  model.Specialty,
		Available:  model.Available,
		ActiveCase: model.ActiveCase,
		UpdatedAt:  model.UpdatedAt,
	}
}

// ModelsToProfessionalResponses преобразует слайс моделей в слайс DTO
func ModelsToProfessionalResponses(models []models.Professional) []ProfessionalResponse {
	responses := make([]ProfessionalResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToProfessionalResponse(model)
	}
	return responses
}

// StatsToResponse преобразует снимок статистики в DTO
func StatsToResponse(snap models.StatsSnapshot) StatsResponse {
	return StatsResponse{
		Total:     snap.Total,
		Active:    snap.Active,
		Processed: snap.Processed,
		Closed:    snap.Closed,
		ByType:    snap.ByType,
	}
}

// RollupToResponse преобразует сводную статистику бэкенда в DTO
func RollupToResponse(rollup models.DashboardRollup) DashboardResponse {
	return DashboardResponse{
		TotalUsers:         rollup.TotalUsers,
		TotalProfessionals: rollup.TotalProfessionals,
		TotalAlerts:        rollup.TotalAlerts,
		OpenCases:          rollup.OpenCases,
	}
}

// AlertSelectionToResponse преобразует состояние выбора тревоги в DTO
func AlertSelectionToResponse(sel reconcile.Selection[models.Alert]) AlertSelectionResponse {
	resp := AlertSelectionResponse{
		Phase: string(sel.Phase),
		ID:    sel.ID,
	}
	if sel.Detail != nil {
		detail := ModelToAlertResponse(*sel.Detail)
		resp.Detail = &detail
	}
	return resp
}

// ProfessionalSelectionToResponse преобразует состояние выбора специалиста в DTO
func ProfessionalSelectionToResponse(sel reconcile.Selection[models.Professional]) ProfessionalSelectionResponse {
	resp := ProfessionalSelectionResponse{
		Phase: string(sel.Phase),
		ID:    sel.ID,
	}
	if sel.Detail != nil {
		detail := ModelToProfessionalResponse(*sel.Detail)
		resp.Detail = &detail
	}
	return resp
}
