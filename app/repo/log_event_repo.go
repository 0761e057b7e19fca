package repo

import (
	"time"

	"gateway-portal/app/models"

	"gorm.io/gorm"
)

type LogEventRepository struct{ db *gorm.DB }

func NewLogEventRepository(db *gorm.DB) *LogEventRepository { return &LogEventRepository{db: db} }

func (r *LogEventRepository) CountSince(cutoff time.Time, levels []string) (int64, error) {
	var n int64
	err := r.db.Model(&models.LogEvent{}).
		Where("datetime >= ? AND level IN ?", cutoff, levels).
		Count(&n).Error
	return n, err
}

// ErrorDescriptionsSince feeds the batch grouping: descriptions of
// ERROR-level events from cutoff onward, oldest first so the grouping's
// first-encountered tie-break is deterministic.
func (r *LogEventRepository) ErrorDescriptionsSince(cutoff time.Time) ([]string, error) {
	var descriptions []string
	err := r.db.Model(&models.LogEvent{}).
		Where("datetime >= ? AND level = ?", cutoff, "ERROR").
		Order("datetime ASC, id ASC").
		Pluck("description", &descriptions).Error
	if err != nil {
		return nil, err
	}
	return descriptions, nil
}

func (r *LogEventRepository) List(level, search string, limit int) ([]models.LogEvent, error) {
	q := r.db.Model(&models.LogEvent{}).Order("datetime DESC")
	if level != "" {
		q = q.Where("level = ?", level)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("description LIKE ? OR doc_channel LIKE ?", like, like)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	events := make([]models.LogEvent, 0)
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
