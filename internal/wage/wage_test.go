package wage

import (
	"testing"

	"PriceScanner/internal/domain"
)

func TestCalculateHourlyMonthly(t *testing.T) {
	t.Parallel()

	settings := domain.UserSettings{
		MonthlySalary:      800,
		DailyHours:         8,
		WorkingDaysPerWeek: 5,
		Currency:           "EUR",
		InputType:          domain.InputMonthly,
	}

	got := CalculateHourly(settings)
	if got.Amount != 5 {
		t.Fatalf("expected hourly rate 5, got %v", got.Amount)
	}
	if got.Formatted != "€5.00/hour" {
		t.Fatalf("unexpected formatted rate: %s", got.Formatted)
	}
	if got.Currency != "EUR" {
		t.Fatalf("unexpected currency: %s", got.Currency)
	}
}

func TestCalculateHourlyDirect(t *testing.T) {
	t.Parallel()

	settings := domain.UserSettings{
		HourlyWage: 17.5,
		Currency:   "USD",
		InputType:  domain.InputHourly,
	}

	got := CalculateHourly(settings)
	if got.Amount != 17.5 {
		t.Fatalf("expected hourly rate 17.5, got %v", got.Amount)
	}
	if got.Formatted != "$17.50/hour" {
		t.Fatalf("unexpected formatted rate: %s", got.Formatted)
	}
}

func TestCalculateHourlyDefaults(t *testing.T) {
	t.Parallel()

	// Zero divisor components must fall back to defaults, never divide by
	// zero.
	got := CalculateHourly(domain.UserSettings{InputType: domain.InputMonthly})
	if got.Amount != domain.DefaultMonthlySalary/(domain.DefaultDailyHours*domain.DefaultWorkingDaysPerWeek*4) {
		t.Fatalf("unexpected defaulted rate: %v", got.Amount)
	}

	got = CalculateHourly(domain.UserSettings{InputType: domain.InputHourly})
	if got.Amount != domain.DefaultHourlyWage {
		t.Fatalf("unexpected defaulted hourly rate: %v", got.Amount)
	}
}

func TestCalculateHourlyUnknownCurrency(t *testing.T) {
	t.Parallel()

	got := CalculateHourly(domain.UserSettings{
		HourlyWage: 10,
		Currency:   "XXX",
		InputType:  domain.InputHourly,
	})
	if got.Formatted != "€10.00/hour" {
		t.Fatalf("expected euro fallback, got %s", got.Formatted)
	}
}

func TestFormatWorkHours(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		hours      float64
		dailyHours float64
		want       string
	}{
		{"half hour", 0.5, 8, "30m"},
		{"just under an hour rounds up", 0.995, 8, "60m"},
		{"zero", 0, 8, "0m"},
		{"fractional hours", 5.998, 8, "6.0h"},
		{"exactly one day", 8, 8, "1d"},
		{"day and remainder", 10, 8, "1d 2.0h"},
		{"several days", 25, 8, "3d 1.0h"},
		{"minutes ignore day length", 0.5, 0, "30m"},
		{"no day length", 9, 0, "N/A"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatWorkHours(tc.hours, tc.dailyHours); got != tc.want {
				t.Fatalf("FormatWorkHours(%v, %v) = %q, want %q", tc.hours, tc.dailyHours, got, tc.want)
			}
		})
	}
}
