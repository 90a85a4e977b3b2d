package models

import (
	"time"
)

// Приоритеты уведомлений
const (
	NotificationPriorityHigh   = "high"
	NotificationPriorityNormal = "normal"
)

// EmergencyRef - ссылка на связанный экстренный запрос внутри уведомления
type EmergencyRef struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification представляет уведомление пользователя.
// Создается на сервере, доставляется опросом, мутируется только отметкой о прочтении.
type Notification struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Content   string        `json:"content"`
	Priority  string        `json:"priority"`
	Read      bool          `json:"read"`
	CreatedAt time.Time     `json:"created_at"`
	Emergency *EmergencyRef `json:"emergency,omitempty"`
}
