package models

import (
	"time"
)

// Professional представляет специалиста поддержки (административный список)
type Professional struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Specialty  string    `json:"specialty,omitempty"`
	Available  bool      `json:"available"`
	ActiveCase string    `json:"active_case,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
