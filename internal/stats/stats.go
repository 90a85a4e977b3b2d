package stats

import (
	"github.com/shenikar/alert_sync_client/internal/models"
)

// UnknownType - корзина для тревог без тега типа
const UnknownType = "unknown"

// Compute считает агрегаты по коллекции тревог. Чистая функция без
// побочных эффектов: пересчитывается при каждом изменении коллекции,
// инкрементальное сопровождение счетчиков не ведется.
func Compute(alerts []models.Alert) models.StatsSnapshot {
	snapshot := models.StatsSnapshot{
		Total:  len(alerts),
		ByType: make(map[string]int),
	}

	for _, alert := range alerts {
		switch alert.Status {
		case models.AlertStatusActive:
			snapshot.Active++
		case models.AlertStatusProcessed:
			snapshot.Processed++
		case models.AlertStatusClosed:
			snapshot.Closed++
		}

		tag := alert.Type
		if tag == "" {
			tag = UnknownType
		}
		snapshot.ByType[tag]++
	}

	return snapshot
}
