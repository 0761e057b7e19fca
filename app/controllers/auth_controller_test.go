package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gateway-portal/app/dto"
	jwtutil "gateway-portal/app/jwt"
	"gateway-portal/app/repo"
	"gateway-portal/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginEndpoint(t *testing.T) {
	gdb := newTestDB(t)
	users := services.NewUserService(repo.NewUserRepository(gdb))
	require.NoError(t, users.CreateUser("operator1", "s3cret", "user"))
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "gateway-portal", ExpMin: 60}
	c := NewAuthController(users, signer)

	login := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c.Login(w, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body)))
		return w
	}

	w := login(`{"username": "operator1", "password": "s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var tok dto.TokenResponse
	require.NoError(t, decodeBody(w, &tok))
	claims, err := signer.Parse(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "operator1", claims.Username)
	assert.Equal(t, "user", claims.Role)

	assert.Equal(t, http.StatusUnauthorized, login(`{"username": "operator1", "password": "wrong"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, login(`{"username": "ghost", "password": "s3cret"}`).Code)
	assert.Equal(t, http.StatusBadRequest, login(`{"username": "operator1"}`).Code)
}
