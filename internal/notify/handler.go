package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/sulat/internal/pkg/web"
)

const (
	defaultHeartbeat = 30 * time.Second
	mimeEventStream  = "text/event-stream"
	connectedMessage = "Connected to notification stream"
)

type Handler struct {
	broker    *Broker
	heartbeat time.Duration
}

func NewHandler(broker *Broker, heartbeat time.Duration) *Handler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &Handler{
		broker:    broker,
		heartbeat: heartbeat,
	}
}

// Stream serves GET /api/notifications.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)

	// The stream outlives the server write timeout.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		slog.Warn("clear write deadline", "reason", err)
	}

	header := w.Header()
	header.Set(web.HeaderContentType, mimeEventStream)
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")

	sub := h.broker.Subscribe()
	defer h.broker.Unsubscribe(sub)

	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, NewEvent(EventConnected, "", connectedMessage)); err != nil {
		slog.Warn("write connected event", "reason", err)
		return
	}
	if err := rc.Flush(); err != nil {
		slog.Error("streaming unsupported", "reason", err)
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case evt, ok := <-sub.Events:
			if !ok {
				return
			}
			if err := writeEvent(w, evt); err != nil {
				slog.Warn("write event", "type", evt.Type, "reason", err)
				return
			}
		case <-ticker.C:
			if _, err := io.WriteString(w, ": heartbeat\n\n"); err != nil {
				slog.Warn("write heartbeat", "reason", err)
				return
			}
		}

		if err := rc.Flush(); err != nil {
			slog.Warn("flush event stream", "reason", err)
			return
		}
	}
}

func writeEvent(w io.Writer, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", evt.Type, err)
	}

	if _, err := fmt.Fprintf(w, "id: %s\ndata: %s\n\n", evt.ID, data); err != nil {
		return fmt.Errorf("write %s event: %w", evt.Type, err)
	}
	return nil
}
