package api

import (
	"time"
)

// AlertDTO - форма тревоги на проводе. Валидируется на границе сети,
// чтобы дальше по коду не было частично заполненных данных.
type AlertDTO struct {
	ID           string    `json:"id" validate:"required"`
	ReporterID   string    `json:"reporter_id" validate:"required"`
	ReporterName string    `json:"reporter_name"`
	Latitude     float64   `json:"latitude" validate:"required,latitude"`
	Longitude    float64   `json:"longitude" validate:"required,longitude"`
	Accuracy     float64   `json:"accuracy" validate:"gte=0"`
	Type         string    `json:"type,omitempty"`
	Status       string    `json:"status" validate:"required,oneof=active processed closed"`
	LastMessage  string    `json:"last_message,omitempty"`
	CreatedAt    time.Time `json:"created_at" validate:"required"`
}

// EmergencyRefDTO - ссылка на экстренный запрос внутри уведомления
type EmergencyRefDTO struct {
	ID        string    `json:"id" validate:"required"`
	Type      string    `json:"type"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationDTO - форма уведомления на проводе
type NotificationDTO struct {
	ID        string           `json:"id" validate:"required"`
	Type      string           `json:"type" validate:"required"`
	Content   string           `json:"content"`
	Priority  string           `json:"priority" validate:"omitempty,oneof=high normal"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at" validate:"required"`
	Emergency *EmergencyRefDTO `json:"emergency,omitempty"`
}

// ProfessionalDTO - форма специалиста на проводе
type ProfessionalDTO struct {
	ID         string    `json:"id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Specialty  string    `json:"specialty,omitempty"`
	Available  bool      `json:"available"`
	ActiveCase string    `json:"active_case,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateEmergencyRequest - тело POST /emergency/request
type CreateEmergencyRequest struct {
	ClientRef string  `json:"client_ref"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Message   string  `json:"message,omitempty"`
}

// CreateEmergencyResponse - подтверждение сервера с количеством оповещенных специалистов
type CreateEmergencyResponse struct {
	AlertID       string `json:"alert_id" validate:"required"`
	NotifiedCount int    `json:"notified_count" validate:"gte=0"`
}

// ActiveAlertResponse - ответ GET /alerts/active
type ActiveAlertResponse struct {
	Active bool `json:"active"`
}

// SendMessageRequest - тело POST /alerts/{id}/message
type SendMessageRequest struct {
	Text string `json:"text"`
}

// DashboardRollupDTO - сводная статистика с бэкенда
type DashboardRollupDTO struct {
	TotalUsers         int `json:"total_users" validate:"gte=0"`
	TotalProfessionals int `json:"total_professionals" validate:"gte=0"`
	TotalAlerts        int `json:"total_alerts" validate:"gte=0"`
	OpenCases          int `json:"open_cases" validate:"gte=0"`
}
