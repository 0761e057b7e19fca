package models

import "time"

// Channel maps the legacy channel registry. Only the fields the dashboard
// reads are modeled; the table carries many more that this service ignores.
type Channel struct {
	ID             uint       `gorm:"primaryKey" json:"pk"`
	ChannelDoc     string     `gorm:"uniqueIndex;size:14" json:"channel_doc"`
	Name           string     `gorm:"size:160" json:"name"`
	Active         int        `json:"active"`
	ToUpdate       int        `gorm:"column:to_update" json:"to_update"`
	ToDelete       int        `gorm:"column:to_delete" json:"to_delete"`
	LastupdateTime *time.Time `gorm:"column:lastupdate_time" json:"lastupdate_time"`
}

func (Channel) TableName() string { return "channels" }
