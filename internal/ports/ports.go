package ports

import (
	"context"

	"PriceScanner/internal/domain"
)

// SettingsStore is the external settings collaborator. Get answers the
// GET_USER_SETTINGS request with defaults merged over whatever is stored;
// Save answers SAVE_USER_SETTINGS. Single-shot request/response: a failed
// call is terminal for that attempt, callers do not retry.
type SettingsStore interface {
	Get(ctx context.Context) (domain.UserSettings, error)
	Save(ctx context.Context, settings domain.UserSettings) error
}
