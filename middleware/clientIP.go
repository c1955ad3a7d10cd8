package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the caller's address for rate limiting and audit
// logs. Proxy headers take precedence over the socket address so the limit
// keys on the real client, not the load balancer.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For holds a comma-separated chain; the originating
	// client is the first entry.
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return strings.TrimSpace(real)
	}
	// RemoteAddr usually carries a port; strip it when present.
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
