package request // import "github.com/estante-app/estante/http/request"

import (
	"net/http"
)

type ContextKey int

const (
	ClientIPContextKey ContextKey = iota
	RequestIDContextKey
)

func getContextStringValue(r *http.Request, key ContextKey) string {
	if v := r.Context().Value(key); v != nil {
		if value, valid := v.(string); valid {
			return value
		}
	}
	return ""
}

// GetRequestID returns the request id stored in the context.
func GetRequestID(r *http.Request) string {
	return getContextStringValue(r, RequestIDContextKey)
}

// FindClientIP returns the client address, preferring the context value
// set by the logging middleware.
func FindClientIP(r *http.Request) string {
	if ip := getContextStringValue(r, ClientIPContextKey); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
