package middleware

import (
	"net"
	"net/http"
	"os"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"xsim-analytics/observatory/internal/logging"
)

// Report requests fan out to the rate-limited analytics upstream on a cache
// miss, so uncached traffic is far more expensive than it looks from the
// outside. One report per second with a small burst keeps a single client
// from draining the upstream quota.
const (
	requestsPerSecond = 1
	burstSize         = 5
)

var (
	perIPLimiters = make(map[string]*rate.Limiter)
	limitersMutex sync.Mutex

	exemptIPs = exemptionsFromEnv()
)

// exemptionsFromEnv builds the exemption set: localhost for reporter runs
// against a local server, plus any comma-separated addresses in
// RATE_LIMIT_EXEMPT_IPS (scheduled exporters, internal dashboards).
func exemptionsFromEnv() map[string]bool {
	exempt := map[string]bool{"127.0.0.1": true, "::1": true}
	for _, ip := range strings.Split(os.Getenv("RATE_LIMIT_EXEMPT_IPS"), ",") {
		ip = strings.TrimSpace(ip)
		if ip == "" {
			continue
		}
		exempt[ip] = true
		logging.Info("Rate limit exemption registered", "ip", ip)
	}
	return exempt
}

func getLimiter(ip string) *rate.Limiter {
	limitersMutex.Lock()
	defer limitersMutex.Unlock()

	if limiter, exists := perIPLimiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(requestsPerSecond, burstSize)
	perIPLimiters[ip] = limiter
	return limiter
}

func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)
		if exemptIPs[ip] {
			next.ServeHTTP(w, r)
			return
		}

		limiter := getLimiter(ip)
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
