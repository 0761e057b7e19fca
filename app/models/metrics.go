package models

import "time"

// MirthMetric is one throughput sample for a gateway channel. Append-only:
// duplicates across ingestion calls are expected, there is no upsert.
type MirthMetric struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	GatewayUID       string    `gorm:"column:gateway_uid;size:64;index:idx_mirth_gw_ts;not null" json:"gateway_uid"`
	GatewayTimestamp time.Time `gorm:"index:idx_mirth_gw_ts;index" json:"gateway_timestamp"`
	ChannelName      string    `gorm:"size:255;index" json:"channel_name"`
	ChannelID        string    `gorm:"size:50" json:"channel_id"`
	Received         int       `json:"received"`
	Sent             int       `json:"sent"`
	Error            int       `json:"error"`
	Filtered         int       `json:"filtered"`
	Queued           int       `json:"queued"`
}

func (MirthMetric) TableName() string { return "mirth_metrics" }

// CheckStatusMetric is one health-check result for a gateway. Append-only.
type CheckStatusMetric struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	GatewayUID       string    `gorm:"column:gateway_uid;size:64;index:idx_check_gw_ts;not null" json:"gateway_uid"`
	GatewayTimestamp time.Time `gorm:"index:idx_check_gw_ts" json:"gateway_timestamp"`
	CheckName        string    `gorm:"size:255;index" json:"check_name"`
	Level            string    `gorm:"size:10" json:"level"`
	Description      string    `gorm:"type:text" json:"description"`
	ActualValue      int       `json:"actual_value"`
	LimitValue       int       `json:"limit_value"`
	Operator         string    `gorm:"size:5" json:"operator"`
	QueryTimeSec     *float64  `json:"query_time_sec"`
}

func (CheckStatusMetric) TableName() string { return "check_status_metrics" }
