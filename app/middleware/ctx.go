package middleware

import (
	"context"

	jwtutil "gateway-portal/app/jwt"
	"gateway-portal/app/models"
)

func GetClaims(ctx context.Context) *jwtutil.Claims {
	if v := ctx.Value(ClaimsKey); v != nil {
		if c, ok := v.(*jwtutil.Claims); ok {
			return c
		}
	}
	return nil
}

func GetGateway(ctx context.Context) *models.Gateway {
	if v := ctx.Value(GatewayKey); v != nil {
		if g, ok := v.(*models.Gateway); ok {
			return g
		}
	}
	return nil
}
