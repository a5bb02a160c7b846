package dto

// ResultResponse is the envelope every endpoint returns.
type ResultResponse struct {
	ResultCode string `json:"resultCode"` // "SUCCESS" or "ERROR"
	Result     any    `json:"result"`
}

// ErrorResponse is the Result payload of an ERROR envelope.
type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// Success wraps a payload in a SUCCESS envelope.
func Success(result any) ResultResponse {
	return ResultResponse{ResultCode: "SUCCESS", Result: result}
}

// Error wraps an error code and message in an ERROR envelope.
func Error(errorCode, message string) ResultResponse {
	return ResultResponse{
		ResultCode: "ERROR",
		Result:     ErrorResponse{ErrorCode: errorCode, Message: message},
	}
}

// MessageResponse is the Result payload for mutations with nothing to echo.
type MessageResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
