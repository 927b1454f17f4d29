package adapter

import (
	"github.com/PuerkitoBio/goquery"
)

// Adapter is a site-family strategy for finding displayed prices inside a
// parsed page. One instance serves one origin; its processed-element memory
// spans every Locate call until Reset.
type Adapter interface {
	// Name identifies the site family inside the registry.
	Name() string

	// Locate returns the price-bearing elements of the document that have
	// not been returned before, deduplicated per logical price container.
	// An empty result is not an error.
	Locate(doc *goquery.Document) []*goquery.Selection

	// ExtractPrice parses a numeric price out of the element's text
	// content. The second return is false when no price can be read.
	ExtractPrice(sel *goquery.Selection) (float64, bool)

	// Reset discards the processed-element memory so previously returned
	// elements may be located again.
	Reset()
}

// Factory instantiates a fresh adapter for one origin.
type Factory func() Adapter
