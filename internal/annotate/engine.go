package annotate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"PriceScanner/internal/adapter"
	"PriceScanner/internal/domain"
	"PriceScanner/internal/ports"
	"PriceScanner/internal/wage"
)

// AnnotationAttr marks every injected annotation node so re-runs and
// external code can find them.
const AnnotationAttr = "data-work-hours"

// State tracks the engine's progress through one page context.
type State int

const (
	StateUninitialized State = iota
	StateAdapterResolved
	StateSettingsLoaded
	StateAnnotated

	// StateNoAdapter is absorbing: the origin has no site family and the
	// engine does no further work on this page.
	StateNoAdapter
)

// String renders the state for logs.
func (s State) String() string {
	switch s {
	case StateAdapterResolved:
		return "adapter_resolved"
	case StateSettingsLoaded:
		return "settings_loaded"
	case StateAnnotated:
		return "annotated"
	case StateNoAdapter:
		return "no_adapter"
	default:
		return "uninitialized"
	}
}

// Candidate pairs a located price element with its extracted value. Lives
// only within one annotation pass.
type Candidate struct {
	Element *goquery.Selection
	Price   float64
}

// Engine orchestrates adapter, wage calculator, and formatter into DOM
// annotations, and owns the annotation lifecycle: idempotent refresh,
// removal on disable, processed-element reset on settings changes. All
// methods must be called from the single goroutine driving the page
// context; overlapping settings updates are not serialized.
type Engine struct {
	registry *adapter.Registry
	store    ports.SettingsStore
	logger   *slog.Logger

	state    State
	adapter  adapter.Adapter
	settings domain.UserSettings
}

// NewEngine wires the registry and settings store.
func NewEngine(registry *adapter.Registry, store ports.SettingsStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		registry: registry,
		store:    store,
		logger:   logger,
		state:    StateUninitialized,
	}
}

// State reports the engine's current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Run executes one full annotation pass over doc for the given origin and
// returns the resulting state. Unsupported origins and unavailable settings
// halt the pipeline quietly; both are logged, neither is an error.
func (e *Engine) Run(ctx context.Context, doc *goquery.Document, origin string) State {
	if e.state == StateNoAdapter {
		return e.state
	}
	if !e.resolveAdapter(origin) {
		return e.state
	}
	if !e.loadSettings(ctx) {
		return e.state
	}
	e.annotate(doc)
	return e.state
}

// ApplyUpdate handles an UPDATE_SETTINGS event. A disable strips existing
// annotations and idles; anything else merges the update over defaults,
// resets the adapter's processed-element memory, and re-annotates.
func (e *Engine) ApplyUpdate(doc *goquery.Document, update domain.SettingsUpdate) {
	if e.adapter == nil {
		e.logger.Debug("settings update before initialization, ignored")
		return
	}

	if !update.Enabled {
		e.settings.Enabled = false
		RemoveAnnotations(doc)
		e.state = StateSettingsLoaded
		e.logger.Info("annotations disabled")
		return
	}

	e.settings = update.Apply()
	e.state = StateSettingsLoaded
	e.Refresh(doc)
}

// Refresh removes every annotation, resets the adapter, and re-runs the
// annotation pass with the current settings snapshot. Running it repeatedly
// yields the same single set of annotation nodes as running it once.
func (e *Engine) Refresh(doc *goquery.Document) {
	if e.adapter == nil {
		return
	}
	e.adapter.Reset()
	RemoveAnnotations(doc)
	e.annotate(doc)
}

func (e *Engine) resolveAdapter(origin string) bool {
	if e.adapter != nil {
		return true
	}

	a, ok := e.registry.Get(origin)
	if !ok {
		e.state = StateNoAdapter
		e.logger.Info("no adapter for origin", "origin", origin)
		return false
	}

	e.adapter = a
	e.state = StateAdapterResolved
	return true
}

func (e *Engine) loadSettings(ctx context.Context) bool {
	settings, err := e.store.Get(ctx)
	if err != nil {
		// Terminal for this attempt: stay in adapter_resolved, no retry.
		e.logger.Error("settings unavailable", "error", err)
		return false
	}

	e.settings = settings
	e.state = StateSettingsLoaded
	return true
}

func (e *Engine) annotate(doc *goquery.Document) {
	if !e.settings.Enabled {
		return
	}

	hourly := wage.CalculateHourly(e.settings)

	var candidates []Candidate
	for _, sel := range e.adapter.Locate(doc) {
		price, ok := e.adapter.ExtractPrice(sel)
		if !ok || price <= 0 {
			continue
		}
		candidates = append(candidates, Candidate{Element: sel, Price: price})
	}

	for _, c := range candidates {
		injectAnnotation(c.Element, e.label(c.Price, hourly))
	}

	e.state = StateAnnotated
	e.logger.Debug("annotation pass complete",
		"state", e.state.String(),
		"annotated", len(candidates),
		"hourly_rate", hourly.Formatted)
}

// label converts a price into its work-time display string. A zero or
// negative hourly rate cannot be converted and yields the sentinel label.
func (e *Engine) label(price float64, hourly domain.HourlyWage) string {
	if hourly.Amount <= 0 {
		return "N/A"
	}
	return wage.FormatWorkHours(price/hourly.Amount, e.settings.DailyHours)
}

// injectAnnotation appends the annotation node as the last child of the
// price element's parent: a labeled span plus a tooltip restating the label.
func injectAnnotation(sel *goquery.Selection, label string) {
	parent := sel.Parent()
	if parent.Length() == 0 {
		return
	}
	parent.AppendHtml(fmt.Sprintf(
		`<span class="work-hours" %s=""><span>%s</span><div class="work-hours-tooltip">You need to work %s</div></span>`,
		AnnotationAttr, label, label))
}

// RemoveAnnotations strips every annotation node previously injected into
// doc.
func RemoveAnnotations(doc *goquery.Document) {
	doc.Find("[" + AnnotationAttr + "]").Remove()
}
