package v1

import (
	"time"
)

// CreateEmergencyRequest DTO для создания экстренной тревоги.
// Геопозиция опциональна на проводе: ее отсутствие означает, что хост
// не получил разрешение на геолокацию, и операция упадет до сети.
type CreateEmergencyRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Accuracy  *float64 `json:"accuracy" validate:"omitempty,gte=0"`
	Message   string   `json:"message,omitempty" validate:"max=2000"`
}

// CreateEmergencyResponse DTO с результатом создания тревоги
type CreateEmergencyResponse struct {
	NotifiedCount int `json:"notified_count"`
}

// SendMessageRequest DTO для отправки сообщения по тревоге
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// SetUserRequest DTO для установки текущего пользователя
type SetUserRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// AlertResponse DTO для ответа с тревогой
type AlertResponse struct {
	ID           string    `json:"id"`
	ReporterID   string    `json:"reporter_id"`
	ReporterName string    `json:"reporter_name,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Accuracy     float64   `json:"accuracy"`
	Type         string    `json:"type,omitempty"`
	Status       string    `json:"status"`
	LastMessage  string    `json:"last_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationResponse DTO для ответа с уведомлением
type NotificationResponse struct {
	ID        string                `json:"id"`
	Type      string                `json:"type"`
	Content   string                `json:"content"`
	Priority  string                `json:"priority"`
	Read      bool                  `json:"read"`
	CreatedAt time.Time             `json:"created_at"`
	Emergency *EmergencyRefResponse `json:"emergency,omitempty"`
}

// EmergencyRefResponse DTO со ссылкой на экстренный запрос
type EmergencyRefResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfessionalResponse DTO для ответа со специалистом
type ProfessionalResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Specialty  string    `json:"specialty,omitempty"`
	Available  bool      `json:"available"`
	ActiveCase string    `json:"active_case,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StatsResponse DTO для ответа со статистикой по тревогам
type StatsResponse struct {
	Total     int            `json:"total"`
	Active    int            `json:"active"`
	Processed int            `json:"processed"`
	Closed    int            `json:"closed"`
	ByType    map[string]int `json:"by_type"`
}

// DashboardResponse DTO со сводной статистикой бэкенда
type DashboardResponse struct {
	TotalUsers         int `json:"total_users"`
	TotalProfessionals int `json:"total_professionals"`
	TotalAlerts        int `json:"total_alerts"`
	OpenCases          int `json:"open_cases"`
}

// ActiveAlertResponse DTO с флагом активной тревоги
type ActiveAlertResponse struct {
	Active bool `json:"active"`
}

// AlertSelectionResponse DTO с состоянием открытой карточки тревоги
type AlertSelectionResponse struct {
	Phase  string         `json:"phase"`
	ID     string         `json:"id,omitempty"`
	Detail *AlertResponse `json:"detail,omitempty"`
}

// ProfessionalSelectionResponse DTO с состоянием открытой карточки специалиста
type ProfessionalSelectionResponse struct {
	Phase  string                `json:"phase"`
	ID     string                `json:"id,omitempty"`
	Detail *ProfessionalResponse `json:"detail,omitempty"`
}

// HealthResponse DTO со статусом ядра синхронизации
type HealthResponse struct {
	Status         string `json:"status"`
	SessionExpired bool   `json:"session_expired"`
	SyncError      string `json:"sync_error,omitempty"`
}
