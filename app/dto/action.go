package dto

import "encoding/json"

type CreateActionRequest struct {
	GtwUID        string          `json:"gtw_uid"`
	ActionCommand string          `json:"action_command"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

type UpdateActionRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}
