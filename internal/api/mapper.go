package api

import (
	"github.com/shenikar/alert_sync_client/internal/models"
)

// DTOToAlertModel преобразует проводную форму тревоги в доменную модель
func DTOToAlertModel(dto AlertDTO) models.Alert {
	return models.Alert{
		ID:           dto.ID,
		ReporterID:   dto.ReporterID,
		ReporterName: dto.ReporterName,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		Accuracy:     dto.Accuracy,
		Type:         dto.Type,
		Status:       dto.Status,
		LastMessage:  dto.LastMessage,
		CreatedAt:    dto.CreatedAt,
	}
}

// DTOToNotificationModel преобразует проводную форму уведомления в доменную модель.
// Пустой приоритет трактуется как normal.
func DTOToNotificationModel(dto NotificationDTO) models.Notification {
	priority := dto.Priority
	if priority == "" {
		priority = models.NotificationPriorityNormal
	}

	n := models.Notification{
		ID:        dto.ID,
		Type:      dto.Type,
		Content:   dto.Content,
		Priority:  priority,
		Read:      dto.Read,
		CreatedAt: dto.CreatedAt,
	}
	if dto.Emergency != nil {
		n.Emergency = &models.EmergencyRef{
			ID:        dto.Emergency.ID,
			Type:      dto.Emergency.Type,
			Message:   dto.Emergency.Message,
			Status:    dto.Emergency.Status,
			CreatedAt: dto.Emergency.CreatedAt,
		}
	}
	return n
}

// DTOToProfessionalModel преобразует проводную форму специалиста в доменную модель
func DTOToProfessionalModel(dto ProfessionalDTO) models.Professional {
	return models.Professional{
		ID:         dto.ID,
		Name:       dto.Name,
		Specialty:  dto.Specialty,
		Available:  dto.Available,
		ActiveCase: dto.ActiveCase,
		UpdatedAt:  dto.UpdatedAt,
	}
}

// DTOToRollupModel преобразует сводную статистику в доменную модель
func DTOToRollupModel(dto DashboardRollupDTO) models.DashboardRollup {
	return models.DashboardRollup{
		TotalUsers:         dto.TotalUsers,
		TotalProfessionals: dto.TotalProfessionals,
		TotalAlerts:        dto.TotalAlerts,
		OpenCases:          dto.OpenCases,
	}
}

// EmergencyModelToDTO преобразует доменный запрос на тревогу в проводную форму
func EmergencyModelToDTO(req models.EmergencyRequest) CreateEmergencyRequest {
	return CreateEmergencyRequest{
		ClientRef: req.ClientRef,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Message:   req.Message,
	}
}
