package repo

import (
	"gateway-portal/app/models"

	"gorm.io/gorm"
)

type ChannelRepository struct{ db *gorm.DB }

func NewChannelRepository(db *gorm.DB) *ChannelRepository { return &ChannelRepository{db: db} }

func (r *ChannelRepository) CountToUpdate() (int64, error) {
	var n int64
	err := r.db.Model(&models.Channel{}).Where("to_update = ?", 1).Count(&n).Error
	return n, err
}

func (r *ChannelRepository) CountToDelete() (int64, error) {
	var n int64
	err := r.db.Model(&models.Channel{}).Where("to_delete = ?", 1).Count(&n).Error
	return n, err
}

// List returns channels, optionally filtered by the active flag.
func (r *ChannelRepository) List(active *int) ([]models.Channel, error) {
	q := r.db.Order("name ASC")
	if active != nil {
		q = q.Where("active = ?", *active)
	}
	channels := make([]models.Channel, 0)
	if err := q.Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}
