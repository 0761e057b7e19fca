package models

import "time"

// ExportPda is one export batch record from the legacy pipeline; the
// dashboard only shows the most recent handful.
type ExportPda struct {
	ID         uint       `gorm:"primaryKey" json:"pk"`
	PdaID      string     `gorm:"column:pda_id;type:text" json:"pda_id"`
	ChannelID  string     `gorm:"size:32" json:"channel_id"`
	InsertTime *time.Time `gorm:"index" json:"insert_time"`
	UpdateTime *time.Time `json:"update_time"`
	Status     int        `json:"status"`
	NrDoc      int        `gorm:"column:nr_doc" json:"nr_doc"`
	Annotation string     `gorm:"type:text" json:"annotation,omitempty"`
}

func (ExportPda) TableName() string { return "export_pda" }

// ImportError is one row of the legacy import-error staging table; the
// dashboard only reports its cardinality.
type ImportError struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Categoria   string `gorm:"size:16" json:"categoria"`
	Nome        string `gorm:"size:64" json:"nome"`
	Descrizione string `gorm:"size:256" json:"descrizione"`
}

func (ImportError) TableName() string { return "errori_da_importare" }
