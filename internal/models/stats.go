package models

// StatsSnapshot - агрегированные счетчики по текущей коллекции тревог.
// Никогда не персистится: всегда пересчитывается из коллекции в памяти,
// чтобы исключить расхождение с ней.
type StatsSnapshot struct {
	Total     int            `json:"total"`
	Active    int            `json:"active"`
	Processed int            `json:"processed"`
	Closed    int            `json:"closed"`
	ByType    map[string]int `json:"by_type"`
}

// DashboardRollup - сводная статистика с бэкенда (опрос раз в 5 минут)
type DashboardRollup struct {
	TotalUsers         int `json:"total_users"`
	TotalProfessionals int `json:"total_professionals"`
	TotalAlerts        int `json:"total_alerts"`
	OpenCases          int `json:"open_cases"`
}
