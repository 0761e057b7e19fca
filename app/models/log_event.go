package models

import "time"

// LogEvent maps the legacy event log table. Read-only for this service:
// rows are produced by the document pipeline, never written here.
type LogEvent struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Username    string     `gorm:"size:30" json:"username,omitempty"`
	Action      string     `gorm:"size:10" json:"action"`
	Description string     `gorm:"type:text" json:"description"`
	Level       string     `gorm:"size:10;index" json:"level"`
	Datetime    *time.Time `gorm:"index" json:"datetime"`
	NodeType    string     `gorm:"size:6" json:"node_type"`
	IPAddress   string     `gorm:"column:ip_address;size:16" json:"ip_address"`
	DocChannel  string     `gorm:"size:14" json:"doc_channel"`
}

func (LogEvent) TableName() string { return "kfe_log_event" }
