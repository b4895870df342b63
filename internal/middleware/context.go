package middleware

// Context keys used to store request metadata on the gin context.
const (
	ContextKeyRequestID = "request_id"
	ContextKeySession   = "session_key"
)
