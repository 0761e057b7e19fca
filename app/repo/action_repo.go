package repo

import (
	"errors"

	"gateway-portal/app/apperrors"
	"gateway-portal/app/models"

	"gorm.io/gorm"
)

// Allowed forward edges of the action lifecycle, keyed by target state.
var allowedPrev = map[string]string{
	models.ActionDelivered: models.ActionPending,
	models.ActionCompleted: models.ActionDelivered,
	models.ActionFailed:    models.ActionDelivered,
}

type ActionRepository struct{ db *gorm.DB }

func NewActionRepository(db *gorm.DB) *ActionRepository { return &ActionRepository{db: db} }

func (r *ActionRepository) Create(a *models.GatewayAction) error {
	return r.db.Create(a).Error
}

// DrainPending hands over every PENDING action of a gateway: each row is
// flipped to DELIVERED with an update conditioned on status=PENDING, so two
// concurrent drains partition the pending set instead of double-delivering.
// Rows lost to a concurrent drain are simply dropped from the result.
func (r *ActionRepository) DrainPending(gatewayUID string) ([]models.GatewayAction, error) {
	var pending []models.GatewayAction
	err := r.db.
		Where("gateway_uid = ? AND status = ?", gatewayUID, models.ActionPending).
		Order("created_at ASC, id ASC").
		Find(&pending).Error
	if err != nil {
		return nil, err
	}

	delivered := make([]models.GatewayAction, 0, len(pending))
	for i := range pending {
		res := r.db.Model(&models.GatewayAction{}).
			Where("id = ? AND status = ?", pending[i].ID, models.ActionPending).
			Update("status", models.ActionDelivered)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			pending[i].Status = models.ActionDelivered
			delivered = append(delivered, pending[i])
		}
	}
	return delivered, nil
}

// UpdateStatus applies one forward transition. Any move outside the
// lifecycle diagram fails with ErrInvalidTransition and leaves the row
// untouched.
func (r *ActionRepository) UpdateStatus(id uint, newStatus string) error {
	prev, ok := allowedPrev[newStatus]
	if !ok {
		return apperrors.ErrInvalidTransition
	}
	res := r.db.Model(&models.GatewayAction{}).
		Where("id = ? AND status = ?", id, prev).
		Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var a models.GatewayAction
		if err := r.db.First(&a, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gorm.ErrRecordNotFound
			}
			return err
		}
		return apperrors.ErrInvalidTransition
	}
	return nil
}

func (r *ActionRepository) ListByGateway(gatewayUID, status string) ([]models.GatewayAction, error) {
	q := r.db.Where("gateway_uid = ?", gatewayUID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	actions := make([]models.GatewayAction, 0)
	if err := q.Order("created_at DESC, id DESC").Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}
