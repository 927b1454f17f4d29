package marketplace

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"PriceScanner/internal/adapter"
)

// FamilyName identifies this adapter inside the registry.
const FamilyName = "marketplace"

// priceSelectors lists the structural contexts a displayed price can live
// in, ordered from most to least specific: search-result listings first,
// then detail pages, deal pages, and alternate pricing widgets. Offscreen
// and aria-hidden duplicates are excluded at the selector level already;
// the visibility predicate catches the rest.
var priceSelectors = []string{
	// Search-result listings.
	`[data-component-type="s-search-result"] .a-price .a-price-whole:not([aria-hidden="true"]):not(.a-offscreen)`,
	`[data-component-type="s-search-result"] .a-price .a-offscreen:not([aria-hidden="true"]):not(.a-price-whole)`,

	// Product detail pages.
	`.a-price .a-offscreen:not([aria-hidden="true"]):not(.a-price-whole)`,
	`.a-price .a-price-whole:not([aria-hidden="true"]):not(.a-offscreen)`,

	// Deal pages.
	`.a-price-deal .a-offscreen:not([aria-hidden="true"]):not(.a-price-whole)`,
	`.a-price-deal .a-price-whole:not([aria-hidden="true"]):not(.a-offscreen)`,

	// Alternate pricing widgets.
	`.a-price[data-a-color="price"] .a-offscreen:not([aria-hidden="true"]):not(.a-price-whole)`,
	`.a-price[data-a-color="secondary"] .a-offscreen:not([aria-hidden="true"]):not(.a-price-whole)`,

	// Strike-through and special pricing.
	`.a-price.a-text-price .a-offscreen:not([aria-hidden="true"]):not(.a-price-whole)`,
	`.a-price.a-text-price .a-price-whole:not([aria-hidden="true"]):not(.a-offscreen)`,
}

// containerKeywords mark an ancestor as a likely price container.
var containerKeywords = []string{"price", "cost", "amount", "value"}

const (
	maxContainerChildren = 10
	maxContainerTextLen  = 200
	smallContainerLimit  = 3
)

var nonPriceChars = regexp.MustCompile(`[^0-9.,]`)

// Adapter locates displayed prices on marketplace-style listing and detail
// pages. One instance serves one origin; processed-element memory is keyed
// by node identity and purged on Reset.
type Adapter struct {
	logger    *slog.Logger
	processed map[*html.Node]struct{}
}

var _ adapter.Adapter = (*Adapter)(nil)

// New builds a marketplace adapter with an empty processed set.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{
		logger:    logger,
		processed: map[*html.Node]struct{}{},
	}
}

// Name identifies the site family inside the registry.
func (a *Adapter) Name() string {
	return FamilyName
}

// Locate walks the selector list in priority order and returns every
// visible, not-yet-processed price element, keeping a single representative
// per logical price container so split whole/fraction widgets annotate
// once. Returned elements are recorded as processed before the call
// returns.
func (a *Adapter) Locate(doc *goquery.Document) []*goquery.Selection {
	var located []*goquery.Selection
	seenContainers := map[*html.Node]struct{}{}

	for _, selector := range priceSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			node := firstNode(sel)
			if node == nil {
				return
			}
			if _, done := a.processed[node]; done {
				return
			}
			if !isVisible(sel) {
				return
			}

			container := bestContainer(sel)
			if container == nil {
				return
			}
			if _, dup := seenContainers[container]; dup {
				return
			}
			seenContainers[container] = struct{}{}

			a.processed[node] = struct{}{}
			located = append(located, sel)
		})
	}

	a.debug("locate", "candidates", len(located))
	return located
}

// ExtractPrice reads a numeric price out of the element's text content.
// Everything but digits and separators is stripped; no currency validation
// is applied. Returns false when nothing parsable remains.
func (a *Adapter) ExtractPrice(sel *goquery.Selection) (float64, bool) {
	return parsePrice(sel.Text())
}

// Reset discards the processed-element memory, allowing previously located
// elements to be returned again after a settings change or full refresh.
func (a *Adapter) Reset() {
	a.processed = map[*html.Node]struct{}{}
}

// parsePrice strips every character that is not a digit, dot, or comma and
// parses what remains. A comma acts as the decimal mark when no dot is
// present; with a dot present, commas are thousands separators and are
// dropped.
func parsePrice(text string) (float64, bool) {
	cleaned := nonPriceChars.ReplaceAllString(strings.TrimSpace(text), "")
	if cleaned == "" {
		return 0, false
	}

	if strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	} else {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// bestContainer walks ancestors of the matched element up to the body,
// returning the first one judged a good price container. Falls back to the
// immediate parent when nothing qualifies; nil only for a detached element.
func bestContainer(sel *goquery.Selection) *html.Node {
	for p := sel.Parent(); p.Length() > 0; p = p.Parent() {
		node := firstNode(p)
		if node == nil || node.Type != html.ElementNode || node.DataAtom == atom.Body || node.DataAtom == atom.Html {
			break
		}
		if isGoodContainer(p) {
			return node
		}
	}

	return firstNode(sel.Parent())
}

// isGoodContainer applies the container heuristic: few direct children,
// little text, and either a price-related class name or a very small
// subtree.
func isGoodContainer(sel *goquery.Selection) bool {
	children := sel.Children().Length()
	if children > maxContainerChildren {
		return false
	}
	if utf8.RuneCountInString(sel.Text()) > maxContainerTextLen {
		return false
	}

	class := strings.ToLower(sel.AttrOr("class", ""))
	for _, keyword := range containerKeywords {
		if strings.Contains(class, keyword) {
			return true
		}
	}
	return children <= smallContainerLimit
}

// isVisible rejects elements hidden through inline styling, aria-hidden, or
// an explicit zero width or height. Without a layout engine the inline
// style attribute is the only rendering signal available, so unstyled
// elements count as visible.
func isVisible(sel *goquery.Selection) bool {
	if _, hidden := sel.Attr("aria-hidden"); hidden {
		return false
	}

	props := styleProperties(sel.AttrOr("style", ""))
	if props["display"] == "none" || props["visibility"] == "hidden" {
		return false
	}
	if opacity, ok := props["opacity"]; ok {
		if v, err := strconv.ParseFloat(opacity, 64); err == nil && v == 0 {
			return false
		}
	}
	if isZeroDimension(props["width"]) || isZeroDimension(props["height"]) {
		return false
	}
	if sel.AttrOr("width", "") == "0" || sel.AttrOr("height", "") == "0" {
		return false
	}
	return true
}

func isZeroDimension(value string) bool {
	if value == "" {
		return false
	}
	trimmed := strings.TrimSuffix(strings.TrimSuffix(value, "px"), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	return err == nil && v == 0
}

func styleProperties(style string) map[string]string {
	props := map[string]string{}
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		props[strings.ToLower(strings.TrimSpace(name))] = strings.ToLower(strings.TrimSpace(value))
	}
	return props
}

func firstNode(sel *goquery.Selection) *html.Node {
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}

func (a *Adapter) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
