package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

// LogRequest logs every request after it has been served. It expects
// InjectWriter to run first; without it status and size are not logged.
func LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		attrs := []any{
			"method", r.Method,
			"url", r.URL.Path,
			"proto", r.Proto,
			"ip", getIPAddress(r),
			"user_agent", r.UserAgent(),
			"duration", time.Since(start),
		}

		if writer, ok := w.(*SafeResponseWriter); ok {
			attrs = append(attrs,
				slog.Int("status_code", writer.Status()),
				slog.Int("bytes", writer.BytesWritten()),
			)
		}

		slog.Info("incoming request", attrs...)
	})
}

// getIPAddress extracts the client's IP address from the request.
func getIPAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
