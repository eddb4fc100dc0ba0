package transport

import "encoding/json"

// Envelope is the standard API response wrapper used for both success and
// error payloads.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody carries the machine-readable code next to the human-readable
// reason.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewSuccess returns a success envelope with an optional message.
func NewSuccess(data interface{}, message string) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewListSuccess returns a success envelope carrying a count next to the data.
func NewListSuccess(data interface{}, count int) Envelope {
	return Envelope{
		Success: true,
		Count:   &count,
		Data:    data,
	}
}

// NewError returns an error envelope.
func NewError(code, message string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
