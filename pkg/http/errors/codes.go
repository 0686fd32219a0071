package errors

import "net/http"

// Default messages for the status codes the API emits.
const (
	MsgBadRequest       = "Bad request."
	MsgNotFound         = "Resource not found."
	MsgMethodNotAllowed = "Method not allowed."
	MsgUnprocessable    = "Unprocessable entity."
	MsgTooManyRequests  = "Too many requests."
	MsgInternalError    = "Internal Server Error."
)

var defaultMessages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusNotFound:            MsgNotFound,
	http.StatusMethodNotAllowed:    MsgMethodNotAllowed,
	http.StatusUnprocessableEntity: MsgUnprocessable,
	http.StatusTooManyRequests:     MsgTooManyRequests,
	http.StatusInternalServerError: MsgInternalError,
}

// DefaultMessage returns the fixed message for status, falling back to the
// standard status text for codes outside the table.
func DefaultMessage(status int) string {
	if msg, ok := defaultMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
