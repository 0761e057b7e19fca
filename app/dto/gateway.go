package dto

type CreateGatewayRequest struct {
	GtwName     string `json:"gtw_name"`
	Description string `json:"gateway_description,omitempty"`
}

// CreateGatewayResponse carries the generated credentials exactly once, at
// registration time. The access key is never readable again.
type CreateGatewayResponse struct {
	GtwUID    string `json:"gtw_uid"`
	AccessKey string `json:"access_key"`
}
