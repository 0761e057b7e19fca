package repo

import (
	"time"

	"gateway-portal/app/models"

	"gorm.io/gorm"
)

type GatewayRepository struct{ db *gorm.DB }

func NewGatewayRepository(db *gorm.DB) *GatewayRepository { return &GatewayRepository{db: db} }

func (r *GatewayRepository) Create(g *models.Gateway) error {
	return r.db.Create(g).Error
}

func (r *GatewayRepository) FindByUID(uid string) (*models.Gateway, error) {
	var g models.Gateway
	if err := r.db.Where("gtw_uid = ?", uid).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GatewayRepository) ListAll() ([]models.Gateway, error) {
	var gws []models.Gateway
	if err := r.db.Order("gtw_name ASC").Find(&gws).Error; err != nil {
		return nil, err
	}
	return gws, nil
}

// TouchLastSeen records proof-of-life: last_date_call is server time, not
// the timestamp the gateway reported.
func (r *GatewayRepository) TouchLastSeen(uid string, at time.Time, ip string) error {
	return r.db.Model(&models.Gateway{}).
		Where("gtw_uid = ?", uid).
		Updates(map[string]any{"last_date_call": at, "last_ip_from": ip}).Error
}

func (r *GatewayRepository) CountTotal() (int64, error) {
	var n int64
	err := r.db.Model(&models.Gateway{}).Count(&n).Error
	return n, err
}

// CountActiveSince counts gateways seen at or after cutoff (boundary
// inclusive).
func (r *GatewayRepository) CountActiveSince(cutoff time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.Gateway{}).
		Where("last_date_call >= ?", cutoff).
		Count(&n).Error
	return n, err
}
