package notify_test

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/sulat/internal/notify"
)

// readEvent reads lines until a blank line and returns the id and decoded
// data of the event, skipping comments.
func readEvent(t *testing.T, r *bufio.Reader) (string, notify.Event) {
	t.Helper()

	var id string
	var evt notify.Event
	var gotData bool
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("read event stream: %v", err)
		}
		line = strings.TrimSuffix(line, "\n")

		switch {
		case line == "" && gotData:
			return id, evt
		case strings.HasPrefix(line, "id: "):
			id = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "data: "):
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &evt); err != nil {
				t.Fatalf("decode event data: %v", err)
			}
			gotData = true
		}
	}
}

func TestHandler_Stream(t *testing.T) {
	t.Parallel()

	b := notify.NewBroker(4)
	h := notify.NewHandler(b, time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(h.Stream))
	t.Cleanup(srv.Close)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL, http.NoBody)
	if err != nil {
		t.Fatal(err)
	}

	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if got, want := res.Header.Get("Content-Type"), "text/event-stream"; got != want {
		t.Errorf("Content-Type = %q, want: %q", got, want)
	}
	if got, want := res.Header.Get("Cache-Control"), "no-cache"; got != want {
		t.Errorf("Cache-Control = %q, want: %q", got, want)
	}

	reader := bufio.NewReader(res.Body)

	id, evt := readEvent(t, reader)
	if evt.Type != notify.EventConnected {
		t.Fatalf("first event type = %q, want: %q", evt.Type, notify.EventConnected)
	}
	if id == "" {
		t.Error("connected event has no id")
	}

	published := notify.NewEvent(notify.EventLetterOpened, "Sophia", "")
	b.Publish(published)

	id, evt = readEvent(t, reader)
	if evt.Type != notify.EventLetterOpened || evt.Name != "Sophia" {
		t.Errorf("event = %+v, want type %q for Sophia", evt, notify.EventLetterOpened)
	}
	if id != published.ID {
		t.Errorf("event id = %q, want: %q", id, published.ID)
	}
	if evt.Timestamp != published.Timestamp {
		t.Errorf("evt.Timestamp = %d, want: %d", evt.Timestamp, published.Timestamp)
	}

	b.Close()

	if _, err := reader.ReadString('\n'); err == nil {
		t.Error("stream still open after broker closed, want: EOF")
	}
}

func TestHandler_Heartbeat(t *testing.T) {
	t.Parallel()

	b := notify.NewBroker(4)
	h := notify.NewHandler(b, 20*time.Millisecond)

	srv := httptest.NewServer(http.HandlerFunc(h.Stream))
	t.Cleanup(srv.Close)
	t.Cleanup(b.Close)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL, http.NoBody)
	if err != nil {
		t.Fatal(err)
	}

	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	reader := bufio.NewReader(res.Body)
	readEvent(t, reader)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("read event stream: %v", err)
		}
		if line == ": heartbeat\n" {
			return
		}
	}
}
