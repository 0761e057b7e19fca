package services

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"gateway-portal/app/models"
	"gateway-portal/app/repo"
)

var ErrBadGatewayCredentials = errors.New("invalid gateway credentials")

// GatewayAuthService checks the X-Gateway-UID / X-Gateway-Key header pair
// against the registry. Implements middleware.GatewayAuthenticator.
type GatewayAuthService struct{ gateways *repo.GatewayRepository }

func NewGatewayAuthService(gateways *repo.GatewayRepository) *GatewayAuthService {
	return &GatewayAuthService{gateways: gateways}
}

func (s *GatewayAuthService) Authenticate(r *http.Request) (*models.Gateway, error) {
	uid := r.Header.Get("X-Gateway-UID")
	key := r.Header.Get("X-Gateway-Key")
	if uid == "" || key == "" {
		return nil, ErrBadGatewayCredentials
	}
	gw, err := s.gateways.FindByUID(uid)
	if err != nil {
		return nil, ErrBadGatewayCredentials
	}
	if gw.GtwPassword == "" || subtle.ConstantTimeCompare([]byte(gw.GtwPassword), []byte(key)) != 1 {
		return nil, ErrBadGatewayCredentials
	}
	return gw, nil
}
