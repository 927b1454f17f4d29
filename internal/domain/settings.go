package domain

// InputType selects which compensation field drives the hourly rate.
type InputType string

const (
	InputMonthly InputType = "monthly"
	InputHourly  InputType = "hourly"
)

// Default working-schedule and income values applied whenever a settings
// field is absent or zero.
const (
	DefaultMonthlySalary      = 800.0
	DefaultHourlyWage         = 5.0
	DefaultDailyHours         = 8.0
	DefaultWorkingDaysPerWeek = 5.0
	DefaultCurrency           = "EUR"
)

// UserSettings is the user's compensation configuration. The core receives
// an immutable snapshot per pipeline run; the settings store owns the
// persisted record. Both salary fields may be populated at once — InputType
// decides which one is active, the other is ignored.
type UserSettings struct {
	MonthlySalary      float64   `yaml:"monthlySalary" json:"monthlySalary"`
	HourlyWage         float64   `yaml:"hourlyWage" json:"hourlyWage"`
	DailyHours         float64   `yaml:"dailyHours" json:"dailyHours"`
	WorkingDaysPerWeek float64   `yaml:"workingDaysPerWeek" json:"workingDaysPerWeek"`
	Currency           string    `yaml:"currency" json:"currency"`
	InputType          InputType `yaml:"inputType" json:"inputType"`
	Enabled            bool      `yaml:"enabled" json:"enabled"`
}

// DefaultSettings returns the compiled-in settings record used when nothing
// has been stored yet.
func DefaultSettings() UserSettings {
	return UserSettings{
		MonthlySalary:      DefaultMonthlySalary,
		HourlyWage:         DefaultHourlyWage,
		DailyHours:         DefaultDailyHours,
		WorkingDaysPerWeek: DefaultWorkingDaysPerWeek,
		Currency:           DefaultCurrency,
		InputType:          InputMonthly,
		Enabled:            true,
	}
}

// SettingsUpdate carries the fields of an UPDATE_SETTINGS message pushed
// from the settings UI. Nil fields fall back to their defaults when the
// update is applied; Enabled is always explicit.
type SettingsUpdate struct {
	MonthlySalary      *float64   `json:"monthlySalary,omitempty"`
	HourlyWage         *float64   `json:"hourlyWage,omitempty"`
	DailyHours         *float64   `json:"dailyHours,omitempty"`
	WorkingDaysPerWeek *float64   `json:"workingDaysPerWeek,omitempty"`
	Currency           *string    `json:"currency,omitempty"`
	InputType          *InputType `json:"inputType,omitempty"`
	Enabled            bool       `json:"enabled"`
}

// Apply merges the update over the default settings and returns the result.
func (u SettingsUpdate) Apply() UserSettings {
	merged := DefaultSettings()
	if u.MonthlySalary != nil {
		merged.MonthlySalary = *u.MonthlySalary
	}
	if u.HourlyWage != nil {
		merged.HourlyWage = *u.HourlyWage
	}
	if u.DailyHours != nil {
		merged.DailyHours = *u.DailyHours
	}
	if u.WorkingDaysPerWeek != nil {
		merged.WorkingDaysPerWeek = *u.WorkingDaysPerWeek
	}
	if u.Currency != nil {
		merged.Currency = *u.Currency
	}
	if u.InputType != nil {
		merged.InputType = *u.InputType
	}
	merged.Enabled = u.Enabled
	return merged
}

// HourlyWage is the user's compensation normalized to a per-hour rate.
// Derived and ephemeral; recomputed on every pipeline run.
type HourlyWage struct {
	Currency  string
	Amount    float64
	Formatted string
}
