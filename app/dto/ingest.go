package dto

import (
	"time"

	"gateway-portal/app/models"
)

// ChannelMetrics is the per-channel block of a heartbeat payload. The
// channel name is the enclosing map key.
type ChannelMetrics struct {
	ChannelID string `json:"channelId"`
	Metrics   struct {
		Received int `json:"received"`
		Sent     int `json:"sent"`
		Error    int `json:"error"`
		Filtered int `json:"filtered"`
		Queued   int `json:"queued"`
	} `json:"metrics"`
}

// CheckStatus is the per-check block of a heartbeat payload, keyed by check
// name in the enclosing map.
type CheckStatus struct {
	Level        string   `json:"level"`
	Description  string   `json:"description,omitempty"`
	ActualValue  int      `json:"act"`
	LimitValue   int      `json:"limit"`
	Operator     string   `json:"operator"`
	QueryTimeSec *float64 `json:"query_time_sec,omitempty"`
}

// IngestRequest is the heartbeat body sent by a gateway: telemetry upload
// and command pickup in one exchange. Field names match the legacy wire
// format.
type IngestRequest struct {
	GtwUID      string                    `json:"gtw_uid"`
	Timestamp   *time.Time                `json:"timestamp"`
	Mirth       map[string]ChannelMetrics `json:"mirth"`
	CheckStatus map[string]CheckStatus    `json:"CheckStatus"`
}

type IngestResponse struct {
	Status         string                 `json:"status"`
	MirthRecords   int                    `json:"mirth_records"`
	CheckRecords   int                    `json:"check_records"`
	PendingActions []models.GatewayAction `json:"pending_actions"`
}
