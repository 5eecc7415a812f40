package errors

// Default messages for standardized error responses
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgInternalError    = "internal server error"
)
