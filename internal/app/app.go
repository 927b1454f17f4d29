package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"PriceScanner/internal/adapter"
	"PriceScanner/internal/adapter/marketplace"
	"PriceScanner/internal/annotate"
	"PriceScanner/internal/config"
	"PriceScanner/internal/domain"
	"PriceScanner/internal/fetch"
	"PriceScanner/internal/infrastructure/storage"
	"PriceScanner/internal/logging"
)

// Application wires config to the registry, settings store, and annotation
// engine.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *adapter.Registry
	store    *storage.SQLiteStore
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}

	registry := adapter.NewRegistry()
	registry.RegisterFamily(marketplace.FamilyName, func() adapter.Adapter {
		return marketplace.New(baseLogger.With("component", "adapter.marketplace"))
	})

	for _, site := range cfg.Sites {
		if err := registry.Bind(site.Name, site.Adapter, site.Patterns); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("site %s: %w", site.Name, err)
		}
	}

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		registry: registry,
		store:    store,
	}, nil
}

// AnnotatePage loads the page at target (an http(s) URL or a local file
// path), runs one annotation pass against it, and returns the serialized
// result. For file input the origin must be supplied explicitly since no
// URL carries it.
func (a *Application) AnnotatePage(ctx context.Context, target, origin string) (string, error) {
	doc, resolvedOrigin, err := a.loadPage(ctx, target)
	if err != nil {
		return "", err
	}
	if origin == "" {
		origin = resolvedOrigin
	}
	if origin == "" {
		return "", fmt.Errorf("no origin for %s; pass one explicitly", target)
	}

	engine := annotate.NewEngine(a.registry, a.store, a.logger.With("component", "engine"))
	state := engine.Run(ctx, doc, origin)
	a.logger.Info("annotation run finished", "origin", origin, "state", state.String())

	page, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serialize page: %w", err)
	}
	return page, nil
}

// Settings exposes the settings store for the CLI surface.
func (a *Application) Settings(ctx context.Context) (domain.UserSettings, error) {
	return a.store.Get(ctx)
}

// SaveSettings persists a new settings record.
func (a *Application) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	return a.store.Save(ctx, settings)
}

// SupportedOrigins lists the literal origins this build supports.
func (a *Application) SupportedOrigins() []string {
	return a.registry.SupportedOrigins()
}

// Close tears down the page-context resources: the adapter cache and the
// settings store handle.
func (a *Application) Close() error {
	a.registry.Clear()
	return a.store.Close()
}

func (a *Application) loadPage(ctx context.Context, target string) (*goquery.Document, string, error) {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		parsed, err := url.Parse(target)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page url %s: %w", target, err)
		}
		doc, err := fetch.Document(ctx, nil, target)
		if err != nil {
			return nil, "", err
		}
		return doc, parsed.Hostname(), nil
	}

	doc, err := fetch.FromFile(target)
	if err != nil {
		return nil, "", err
	}
	return doc, "", nil
}
