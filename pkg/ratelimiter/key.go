package ratelimiter

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// KeyFunc derives the bucket key for a request. An empty key bypasses the
// limiter.
type KeyFunc func(r *http.Request) string

// ClientIP keys requests by client address. With trustProxy the first valid
// address of CF-Connecting-IP, X-Forwarded-For or X-Real-IP wins; otherwise
// only RemoteAddr counts, since those headers are client controlled.
func ClientIP(trustProxy bool) KeyFunc {
	return func(r *http.Request) string {
		if trustProxy {
			if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
				return ip
			}
			for part := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
				if ip := parseIP(part); ip != "" {
					return ip
				}
			}
			if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
				return ip
			}
		}

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return parseIP(r.RemoteAddr)
		}
		return parseIP(host)
	}
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
