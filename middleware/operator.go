package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/hirecentive/dashboard/userctx"
)

// WithOperator stamps every request with the configured operator name and the
// client IP so services can attribute the changes they record.
func WithOperator(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := userctx.SetOperator(r.Context(), name)
			ctx = userctx.SetClientIP(ctx, getIPAddress(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr without the port
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
