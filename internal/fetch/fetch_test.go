package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDocument(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("unexpected user agent: %s", got)
		}
		_, _ = w.Write([]byte(`<html><body><span class="a-offscreen">$9.99</span></body></html>`))
	}))
	defer server.Close()

	doc, err := Document(context.Background(), server.Client(), server.URL)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if got := doc.Find(".a-offscreen").Text(); got != "$9.99" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestDocumentNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := Document(context.Background(), server.Client(), server.URL); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(`<html><body><p>hi</p></body></html>`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if got := doc.Find("p").Text(); got != "hi" {
		t.Fatalf("unexpected content: %q", got)
	}
}
