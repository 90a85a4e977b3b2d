package models

import (
	"time"
)

// Статусы тревоги. Переходы монотонны: active -> processed -> closed.
// Клиент никогда не откатывает статус локально, только отражает ответ сервера.
const (
	AlertStatusActive    = "active"
	AlertStatusProcessed = "processed"
	AlertStatusClosed    = "closed"
)

// Alert представляет тревогу пострадавшего
type Alert struct {
	ID           string    `json:"id"`
	ReporterID   string    `json:"reporter_id"`
	ReporterName string    `json:"reporter_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Accuracy     float64   `json:"accuracy"`
	Type         string    `json:"type,omitempty"`
	Status       string    `json:"status"`
	LastMessage  string    `json:"last_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// StatusRank возвращает порядковый номер статуса для проверки монотонности
func StatusRank(status string) int {
	switch status {
	case AlertStatusActive:
		return 0
	case AlertStatusProcessed:
		return 1
	case AlertStatusClosed:
		return 2
	}
	return -1
}

// AlertMessage представляет сообщение, отправленное профессионалом по тревоге
type AlertMessage struct {
	AlertID string    `json:"alert_id"`
	Text    string    `json:"text"`
	SentAt  time.Time `json:"sent_at"`
}

// EmergencyRequest - запрос на создание экстренной тревоги.
// Геолокация обязательна: без разрешения на геопозицию запрос не отправляется.
type EmergencyRequest struct {
	ClientRef string    `json:"client_ref"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
