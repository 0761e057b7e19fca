package services

import (
	"encoding/json"
	"errors"

	"gateway-portal/app/apperrors"
	"gateway-portal/app/models"
	"gateway-portal/app/repo"

	"gorm.io/gorm"
)

type ActionService struct {
	actions  *repo.ActionRepository
	gateways *repo.GatewayRepository
}

func NewActionService(actions *repo.ActionRepository, gateways *repo.GatewayRepository) *ActionService {
	return &ActionService{actions: actions, gateways: gateways}
}

// Enqueue creates a PENDING action for a gateway, attributed to the
// operator who asked for it.
func (s *ActionService) Enqueue(gtwUID, command string, payload json.RawMessage, creator string) (*models.GatewayAction, error) {
	gw, err := s.gateways.FindByUID(gtwUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownGateway
		}
		return nil, apperrors.Storage("gateway lookup", err)
	}
	a := &models.GatewayAction{
		GatewayUID:    gw.GtwUID,
		ActionCommand: command,
		Payload:       string(payload),
		Status:        models.ActionPending,
		CreatedBy:     creator,
	}
	if err := s.actions.Create(a); err != nil {
		return nil, apperrors.Storage("action create", err)
	}
	return a, nil
}

// UpdateStatus is the acknowledgment path: DELIVERED -> COMPLETED|FAILED.
// The repository enforces the forward-only lifecycle.
func (s *ActionService) UpdateStatus(id uint, status string) error {
	return s.actions.UpdateStatus(id, status)
}

func (s *ActionService) List(gatewayUID, status string) ([]models.GatewayAction, error) {
	list, err := s.actions.ListByGateway(gatewayUID, status)
	if err != nil {
		return nil, apperrors.Storage("action list", err)
	}
	return list, nil
}
