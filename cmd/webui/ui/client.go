package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Session is an authenticated HTTP session against the portal API.
type Session struct {
	BaseURL string
	Token   string
	client  *http.Client
}

func NewSession() *Session {
	return &Session{client: &http.Client{Timeout: 10 * time.Second}}
}

// Login exchanges operator credentials for a bearer token.
func (s *Session) Login(baseURL, username, password string) error {
	s.BaseURL = baseURL
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := s.client.Post(baseURL+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: status %d", resp.StatusCode)
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	s.Token = out.AccessToken
	return nil
}

func (s *Session) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// StatsPayload mirrors the dashboard stats response.
type StatsPayload struct {
	KPI struct {
		ActiveGateways    int64 `json:"active_gateways"`
		TotalGateways     int64 `json:"total_gateways"`
		ChannelsToUpdate  int64 `json:"channels_to_update"`
		ChannelsToDelete  int64 `json:"channels_to_delete"`
		ErrorsLast24h     int64 `json:"errors_last_24h"`
		ImportErrorsCount int64 `json:"import_errors_count"`
	} `json:"kpi"`
	TopBatchErrors []struct {
		BatchName string `json:"batch_name"`
		Count     int    `json:"count"`
	} `json:"top_batch_errors"`
}

type GatewayEntry struct {
	GtwName      string     `json:"gtw_name"`
	GtwUID       string     `json:"gtw_uid"`
	LastDateCall *time.Time `json:"last_date_call"`
	SwVersion    string     `json:"sw_version"`
}

func (s *Session) Stats() (*StatsPayload, error) {
	var stats StatsPayload
	if err := s.get("/api/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Session) Gateways() ([]GatewayEntry, error) {
	var gws []GatewayEntry
	if err := s.get("/api/gateways", &gws); err != nil {
		return nil, err
	}
	return gws, nil
}
