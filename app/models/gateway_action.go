package models

import "time"

// Lifecycle states of a GatewayAction. Transitions only move forward:
// PENDING -> DELIVERED -> COMPLETED|FAILED.
const (
	ActionPending   = "PENDING"
	ActionDelivered = "DELIVERED"
	ActionCompleted = "COMPLETED"
	ActionFailed    = "FAILED"
)

// GatewayAction is an operator-issued command queued for a gateway and
// handed over on its next heartbeat. Rows are never deleted, only
// transitioned.
type GatewayAction struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GatewayUID    string    `gorm:"column:gateway_uid;size:64;index:idx_action_gw_status;not null" json:"gateway"`
	ActionCommand string    `gorm:"size:100" json:"action_command"`
	Payload       string    `gorm:"type:text" json:"payload,omitempty"` // JSON argument
	Status        string    `gorm:"size:10;index:idx_action_gw_status;default:PENDING" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	CreatedBy     string    `gorm:"size:150" json:"created_by"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GatewayAction) TableName() string { return "gateway_pending_actions" }
