package adapter

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
)

type stubAdapter struct {
	name string
}

func (s *stubAdapter) Name() string                                    { return s.name }
func (s *stubAdapter) Locate(*goquery.Document) []*goquery.Selection   { return nil }
func (s *stubAdapter) ExtractPrice(*goquery.Selection) (float64, bool) { return 0, false }
func (s *stubAdapter) Reset()                                          {}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r := NewRegistry()
	r.RegisterFamily("marketplace", func() Adapter { return &stubAdapter{name: "marketplace"} })
	r.RegisterFamily("auction", func() Adapter { return &stubAdapter{name: "auction"} })

	if err := r.Bind("amazon", "marketplace", []string{"*://*.amazon.com/*", "*://*.amazon.co.uk/*"}); err != nil {
		t.Fatalf("bind amazon: %v", err)
	}
	if err := r.Bind("ebay", "auction", []string{"*://*.ebay.com/*"}); err != nil {
		t.Fatalf("bind ebay: %v", err)
	}
	return r
}

func TestRegistryGetMatchesKeyword(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	a, ok := r.Get("www.amazon.com")
	if !ok {
		t.Fatal("expected adapter for www.amazon.com")
	}
	if a.Name() != "marketplace" {
		t.Fatalf("unexpected family: %s", a.Name())
	}

	b, ok := r.Get("www.ebay.com")
	if !ok {
		t.Fatal("expected adapter for www.ebay.com")
	}
	if b.Name() != "auction" {
		t.Fatalf("unexpected family: %s", b.Name())
	}
}

func TestRegistryGetMemoizesPerOrigin(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	first, _ := r.Get("www.amazon.com")
	second, _ := r.Get("www.amazon.com")
	if first != second {
		t.Fatal("expected the same cached instance per origin")
	}

	other, _ := r.Get("www.amazon.co.uk")
	if other == first {
		t.Fatal("distinct origins must get distinct instances")
	}
}

func TestRegistryGetUnsupportedOrigin(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	if _, ok := r.Get("shop.example.org"); ok {
		t.Fatal("expected no adapter for an unsupported origin")
	}
}

func TestRegistryClear(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	first, _ := r.Get("www.amazon.com")
	r.Clear()
	second, _ := r.Get("www.amazon.com")
	if first == second {
		t.Fatal("expected a fresh instance after Clear")
	}
}

func TestRegistryBindUnknownFamily(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Bind("amazon", "missing", nil); err == nil {
		t.Fatal("expected an error for an unregistered family")
	}
}

func TestSupportedOrigins(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	got := r.SupportedOrigins()
	want := []string{"amazon.com", "amazon.co.uk", "ebay.com"}
	if len(got) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("origin %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
