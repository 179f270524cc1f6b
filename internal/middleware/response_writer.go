package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
)

const defaultStatus = http.StatusOK

// SafeResponseWriter records the status and size of a response and drops
// writes for requests whose context is already done.
//
//nolint:containedctx //This ResponseWriter wrapper requires a context to gracefully handle canceled or timed-out requests.
type SafeResponseWriter struct {
	http.ResponseWriter
	ctx context.Context

	mu            sync.Mutex
	status        int
	headerWritten bool
	bytesSent     atomic.Int64
}

func NewSafeResponseWriter(ctx context.Context, w http.ResponseWriter) *SafeResponseWriter {
	return &SafeResponseWriter{
		ResponseWriter: w,
		ctx:            ctx,
		status:         defaultStatus,
	}
}

func (w *SafeResponseWriter) WriteHeader(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ctx.Err(); err != nil {
		warnCtxErr(err)
		return
	}

	if w.headerWritten {
		return
	}

	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
	w.headerWritten = true
}

func (w *SafeResponseWriter) Write(b []byte) (int, error) {
	if err := w.ctx.Err(); err != nil {
		warnCtxErr(err)
		return 0, nil
	}

	w.mu.Lock()
	if !w.headerWritten {
		w.ResponseWriter.WriteHeader(defaultStatus)
		w.status = defaultStatus
		w.headerWritten = true
	}
	w.mu.Unlock()

	n, err := w.ResponseWriter.Write(b)
	w.bytesSent.Add(int64(n))
	return n, err
}

// Flush lets event streams push data through the wrapper.
func (w *SafeResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *SafeResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *SafeResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *SafeResponseWriter) BytesWritten() int {
	return int(w.bytesSent.Load())
}

func warnCtxErr(err error) {
	slog.Warn("context error occurred", "error", err)
}
