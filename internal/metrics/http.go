package metrics

import (
	"strconv"
	"strings"
	"time"
)

// infraPaths are served by the process itself and stay out of request metrics
var infraPaths = []string{"/metrics", "/health", "/ready"}

// Observed reports whether requests to path are counted
func Observed(path string) bool {
	for _, p := range infraPaths {
		if strings.HasSuffix(path, p) {
			return false
		}
	}
	return true
}

// ObserveRequest counts one served request under its route pattern.
// Requests that matched no route share the "unmatched" label.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.safeExecute("ObserveRequest", func() {
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(method, route, statusClass(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	})
}

// statusClass buckets a status code into a label such as "4xx"
func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}
