package dto

import "time"

// APIResponse wraps every successful payload.
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp" example:"2025-09-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in a success envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse is the payload of operations without a resource to return.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
