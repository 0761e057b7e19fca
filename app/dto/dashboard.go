package dto

import "gateway-portal/app/models"

type KPI struct {
	ActiveGateways    int64 `json:"active_gateways"`
	TotalGateways     int64 `json:"total_gateways"`
	ChannelsToUpdate  int64 `json:"channels_to_update"`
	ChannelsToDelete  int64 `json:"channels_to_delete"`
	ErrorsLast24h     int64 `json:"errors_last_24h"`
	ImportErrorsCount int64 `json:"import_errors_count"`
}

// BatchErrorCount is one entry of the top-error-batches ranking.
type BatchErrorCount struct {
	BatchName string `json:"batch_name"`
	Count     int    `json:"count"`
}

type DashboardStats struct {
	KPI            KPI                `json:"kpi"`
	RecentExports  []models.ExportPda `json:"recent_exports"`
	TopBatchErrors []BatchErrorCount  `json:"top_batch_errors"`
}

// LogEventView is a LogEvent plus the derived batch_name view field.
type LogEventView struct {
	models.LogEvent
	BatchName *string `json:"batch_name"`
}
