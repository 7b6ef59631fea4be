package model

// Response is the envelope every API endpoint answers with.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ListResponse wraps list payloads together with their total count.
type ListResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
}
