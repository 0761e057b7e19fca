package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"gateway-portal/app/dto"
	"gateway-portal/global"
)

// ErrTicketNotConfigured means the Mantis endpoint or key is absent from
// the server configuration.
var ErrTicketNotConfigured = errors.New("mantis configuration missing")

// UpstreamError carries the failure of the proxied Mantis call; callers map
// it to 502.
type UpstreamError struct{ Err error }

func (e *UpstreamError) Error() string { return fmt.Sprintf("mantis call failed: %v", e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }

// TicketService proxies ticket creation to MantisBT. Endpoint and key are
// injected (and hot-swappable on config reload), never read from the
// environment here.
type TicketService struct {
	client *http.Client

	mu     sync.RWMutex
	url    string
	apiKey string
}

func NewTicketService(client *http.Client, url, apiKey string) *TicketService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &TicketService{client: client, url: url, apiKey: apiKey}
}

// SetUpstream swaps the Mantis endpoint/key; wired to the config watcher.
func (s *TicketService) SetUpstream(url, apiKey string) {
	s.mu.Lock()
	s.url = url
	s.apiKey = apiKey
	s.mu.Unlock()
}

// Create forwards a ticket to Mantis and returns the upstream status code
// and body verbatim.
func (s *TicketService) Create(req dto.TicketRequest, operator string) (int, json.RawMessage, error) {
	s.mu.RLock()
	url, apiKey := s.url, s.apiKey
	s.mu.RUnlock()
	if url == "" || apiKey == "" {
		return 0, nil, ErrTicketNotConfigured
	}

	body, _ := json.Marshal(map[string]string{
		"summary":     req.Summary,
		"description": req.Description,
	})
	httpReq, err := http.NewRequest(http.MethodPost, url+"/issues", bytes.NewReader(body))
	if err != nil {
		return 0, nil, &UpstreamError{Err: err}
	}
	httpReq.Header.Set("Authorization", apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return 0, nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	var out json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		out = json.RawMessage(`{}`)
	}
	if resp.StatusCode >= 400 {
		return 0, nil, &UpstreamError{Err: fmt.Errorf("upstream status %d", resp.StatusCode)}
	}

	global.Logger.Info().Str("operator", operator).Str("summary", req.Summary).Msg("mantis ticket created")
	return resp.StatusCode, out, nil
}
