package dto

import "time"

// APIError is the error half of the response envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the uniform envelope every endpoint returns:
// {success, data?, error?, timestamp}.
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SuccessResponse wraps data in the envelope.
func SuccessResponse(data any) Response {
	return Response{Success: true, Data: data, Timestamp: time.Now().UTC()}
}

// ErrorResponse wraps an error code and message in the envelope.
func ErrorResponse(code, message string) Response {
	return Response{Success: false, Error: &APIError{Code: code, Message: message}, Timestamp: time.Now().UTC()}
}
