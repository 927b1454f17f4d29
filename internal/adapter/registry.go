package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// binding ties an origin keyword to a registered site family. Bindings are
// tried in registration order; the first keyword contained in the origin
// wins.
type binding struct {
	keyword  string
	family   string
	patterns []string
}

// Registry maps page origins to adapter instances. Lookup is memoized per
// exact origin; the cache lives as long as the page context and is emptied
// through Clear at teardown.
type Registry struct {
	families map[string]Factory
	bindings []binding
	cache    map[string]Adapter
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		families: map[string]Factory{},
		cache:    map[string]Adapter{},
	}
}

// RegisterFamily adds or replaces a site-family factory.
func (r *Registry) RegisterFamily(name string, factory Factory) {
	r.families[name] = factory
}

// Bind routes origins containing keyword to the named family. The wildcard
// patterns are only surfaced through SupportedOrigins, never consulted
// during lookup.
func (r *Registry) Bind(keyword, family string, patterns []string) error {
	if _, ok := r.families[family]; !ok {
		return fmt.Errorf("site family %s is not registered", family)
	}
	r.bindings = append(r.bindings, binding{keyword: keyword, family: family, patterns: patterns})
	return nil
}

// Get returns the adapter serving origin, instantiating and caching one on
// first use. The second return is false when no site family matches; the
// caller must treat that as an unsupported site, not an error.
func (r *Registry) Get(origin string) (Adapter, bool) {
	if cached, ok := r.cache[origin]; ok {
		return cached, true
	}

	for _, b := range r.bindings {
		if !strings.Contains(origin, b.keyword) {
			continue
		}
		instance := r.families[b.family]()
		r.cache[origin] = instance
		return instance, true
	}

	return nil, false
}

// Clear empties the adapter cache. Invoked when the page context is torn
// down so no stale processed-element state leaks into the next page.
func (r *Registry) Clear() {
	r.cache = map[string]Adapter{}
}

// SupportedOrigins derives the literal origins covered by the configured
// wildcard site patterns. Diagnostic only.
func (r *Registry) SupportedOrigins() []string {
	var origins []string
	seen := map[string]struct{}{}
	for _, b := range r.bindings {
		for _, pattern := range b.patterns {
			host := hostFromPattern(pattern)
			if host == "" {
				continue
			}
			if _, ok := seen[host]; ok {
				continue
			}
			seen[host] = struct{}{}
			origins = append(origins, host)
		}
	}
	return origins
}

func hostFromPattern(pattern string) string {
	normalized := strings.Replace(pattern, "*://", "https://", 1)
	parsed, err := url.Parse(normalized)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "*.")
}
