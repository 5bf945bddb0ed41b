package response

// Response is the standard API envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK returns a success envelope wrapping the data.
func OK(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Fail returns an error envelope wrapping the message.
func Fail(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}
