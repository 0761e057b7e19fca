package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gateway-portal/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketCreateForwardsToMantis(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/issues", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"issue":{"id":42}}`))
	}))
	defer upstream.Close()

	svc := NewTicketService(upstream.Client(), upstream.URL, "key-abc")
	status, body, err := svc.Create(dto.TicketRequest{Summary: "broken channel", Description: "details"}, "operator1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"issue":{"id":42}}`, string(body))
	assert.Equal(t, "key-abc", gotAuth)
	assert.Equal(t, "broken channel", gotBody["summary"])
	assert.Equal(t, "details", gotBody["description"])
}

func TestTicketCreateUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := NewTicketService(upstream.Client(), upstream.URL, "key-abc")
	_, _, err := svc.Create(dto.TicketRequest{Summary: "s", Description: "d"}, "operator1")
	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}

func TestTicketCreateNotConfigured(t *testing.T) {
	svc := NewTicketService(nil, "", "")
	_, _, err := svc.Create(dto.TicketRequest{Summary: "s", Description: "d"}, "operator1")
	assert.ErrorIs(t, err, ErrTicketNotConfigured)
}

func TestTicketSetUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	svc := NewTicketService(upstream.Client(), "", "")
	_, _, err := svc.Create(dto.TicketRequest{Summary: "s", Description: "d"}, "op")
	require.ErrorIs(t, err, ErrTicketNotConfigured)

	// config reload rotates the endpoint without a restart
	svc.SetUpstream(upstream.URL, "rotated-key")
	status, _, err := svc.Create(dto.TicketRequest{Summary: "s", Description: "d"}, "op")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
}
