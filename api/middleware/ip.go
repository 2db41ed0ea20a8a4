package middleware

import (
	"net/http"
	"strings"
)

// extractIP gets the client IP from the request
func extractIP(r *http.Request) string {
	// X-Forwarded-For lists the originating client first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}
