package repo

import (
	"time"

	"gateway-portal/app/models"

	"gorm.io/gorm"
)

type MetricsRepository struct{ db *gorm.DB }

func NewMetricsRepository(db *gorm.DB) *MetricsRepository { return &MetricsRepository{db: db} }

func (r *MetricsRepository) BulkCreateMirth(rows []models.MirthMetric) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

func (r *MetricsRepository) BulkCreateChecks(rows []models.CheckStatusMetric) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

// ChannelHistory returns the throughput samples of one gateway channel from
// `since` onward, ascending by report timestamp. An unknown gateway or
// channel yields an empty slice, not an error.
func (r *MetricsRepository) ChannelHistory(gatewayUID, channelName string, since time.Time) ([]models.MirthMetric, error) {
	rows := make([]models.MirthMetric, 0)
	err := r.db.
		Where("gateway_uid = ? AND channel_name = ? AND gateway_timestamp >= ?", gatewayUID, channelName, since).
		Order("gateway_timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
