package services

import (
	"strings"

	"gateway-portal/app/models"
	"gateway-portal/app/repo"

	"github.com/google/uuid"
)

type GatewayService struct{ gateways *repo.GatewayRepository }

func NewGatewayService(gateways *repo.GatewayRepository) *GatewayService {
	return &GatewayService{gateways: gateways}
}

// Register creates a gateway with generated credentials. The access key is
// only available to the caller at this moment; the column is capped at 16
// chars by the legacy schema.
func (s *GatewayService) Register(name, description string) (*models.Gateway, string, error) {
	uid := uuid.NewString()
	key := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	g := &models.Gateway{
		GtwName:     name,
		GtwUID:      uid,
		GtwPassword: key,
		Description: description,
	}
	if err := s.gateways.Create(g); err != nil {
		return nil, "", err
	}
	return g, key, nil
}

func (s *GatewayService) FindByUID(uid string) (*models.Gateway, error) {
	return s.gateways.FindByUID(uid)
}

func (s *GatewayService) ListAll() ([]models.Gateway, error) {
	return s.gateways.ListAll()
}
