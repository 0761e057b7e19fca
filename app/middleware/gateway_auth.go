package middleware

import (
	"context"
	"net/http"

	"gateway-portal/app/models"
)

// GatewayAuthenticator verifies per-gateway credentials on the ingestion
// path. It runs before, and independently of, the ingestion transaction.
type GatewayAuthenticator interface {
	Authenticate(r *http.Request) (*models.Gateway, error)
}

// GatewayAuth guards the ingestion endpoint. With Require unset it mirrors
// the legacy open endpoint: credentials are checked when present, absence
// is tolerated.
type GatewayAuth struct {
	Authenticator GatewayAuthenticator
	Require       bool
}

func (g *GatewayAuth) Verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gw, err := g.Authenticator.Authenticate(r)
		if err != nil {
			if g.Require {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid gateway credentials"}`))
				return
			}
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), GatewayKey, gw)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
