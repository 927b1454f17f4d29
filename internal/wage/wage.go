package wage

import (
	"fmt"
	"math"

	"PriceScanner/internal/domain"
)

// weeksPerMonth models the month as four working weeks when deriving an
// hourly rate from a monthly salary.
const weeksPerMonth = 4

// CalculateHourly normalizes the user's compensation settings to an hourly
// rate. Zero or absent components fall back to their defaults, so the result
// is always finite for well-formed input; negative settings are passed
// through untouched.
func CalculateHourly(settings domain.UserSettings) domain.HourlyWage {
	var amount float64
	switch settings.InputType {
	case domain.InputHourly:
		amount = orDefault(settings.HourlyWage, domain.DefaultHourlyWage)
	default:
		monthly := orDefault(settings.MonthlySalary, domain.DefaultMonthlySalary)
		daily := orDefault(settings.DailyHours, domain.DefaultDailyHours)
		days := orDefault(settings.WorkingDaysPerWeek, domain.DefaultWorkingDaysPerWeek)
		amount = monthly / (daily * days * weeksPerMonth)
	}

	return domain.HourlyWage{
		Currency:  settings.Currency,
		Amount:    amount,
		Formatted: fmt.Sprintf("%s%.2f/hour", domain.SymbolFor(settings.Currency), amount),
	}
}

func orDefault(value, fallback float64) float64 {
	if value == 0 {
		return fallback
	}
	return value
}

// FormatWorkHours renders a work-hours quantity as a compact label:
// minutes under one hour, fractional hours under one working day, otherwise
// whole days plus a remainder. Values just under one hour round up to "60m".
// A day length of zero cannot be formatted beyond the minute range and
// yields "N/A".
func FormatWorkHours(hours, dailyHours float64) string {
	if hours < 1 {
		return fmt.Sprintf("%dm", int(math.Round(hours*60)))
	}
	if dailyHours <= 0 {
		return "N/A"
	}
	if hours < dailyHours {
		return fmt.Sprintf("%.1fh", hours)
	}

	days := int(math.Floor(hours / dailyHours))
	remainder := math.Mod(hours, dailyHours)
	if remainder > 0 {
		return fmt.Sprintf("%dd %.1fh", days, remainder)
	}
	return fmt.Sprintf("%dd", days)
}
