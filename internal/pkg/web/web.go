package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/ferdiebergado/gopherkit/http/response"
)

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
)

// JSON writes data as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	response.JSON(w, status, data)
}

func DecodeJSONResponse(t *testing.T, res *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode json response: %v", err)
	}

	return body
}

func AssertContentType(t *testing.T, res *http.Response) {
	t.Helper()

	gotContent := res.Header.Get(HeaderContentType)
	if !strings.HasPrefix(gotContent, MimeJSON) {
		t.Errorf("res.Header.Get(%q) = %q, want: %q", HeaderContentType, gotContent, MimeJSON)
	}
}
