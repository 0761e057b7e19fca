package models

import "time"

// Gateway is the identity row of a remote gateway; legacy table "gateways".
type Gateway struct {
	ID              uint       `gorm:"primaryKey" json:"pk"`
	GtwName         string     `gorm:"size:30" json:"gtw_name"`
	GtwUID          string     `gorm:"column:gtw_uid;uniqueIndex;size:64;not null" json:"gtw_uid"`
	GtwPassword     string     `gorm:"size:16" json:"-"` // ingest access key
	LastIPFrom      string     `gorm:"column:last_ip_from;size:32" json:"last_ip_from"`
	LastDateCall    *time.Time `gorm:"index" json:"last_date_call"`
	ActivateService int        `json:"activate_service"`
	SwVersion       string     `gorm:"size:5" json:"sw_version"`
	CurrentVersion  string     `gorm:"size:5" json:"current_version"`
	Description     string     `gorm:"column:gateway_description;size:256" json:"gateway_description"`
	GatewayEndpoint string     `gorm:"type:text" json:"gateway_endpoint,omitempty"`
}

func (Gateway) TableName() string { return "gateways" }
