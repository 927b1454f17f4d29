package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"PriceScanner/internal/app"
	"PriceScanner/internal/config"
	"PriceScanner/internal/domain"
	"PriceScanner/internal/logging"
)

const usage = `usage: pricescanner <command> [flags]

commands:
  annotate   fetch a page and annotate its prices with work-hours labels
  settings   get or set the stored user settings
  sites      list the origins this build supports
`

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	ctx := context.Background()
	switch os.Args[1] {
	case "annotate":
		err = runAnnotate(ctx, application, os.Args[2:])
	case "settings":
		err = runSettings(ctx, application, os.Args[2:])
	case "sites":
		for _, origin := range application.SupportedOrigins() {
			fmt.Println(origin)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func runAnnotate(ctx context.Context, application *app.Application, args []string) error {
	fs := flag.NewFlagSet("annotate", flag.ExitOnError)
	pageURL := fs.String("url", "", "page URL to fetch and annotate")
	pageFile := fs.String("file", "", "saved page to annotate instead of fetching")
	origin := fs.String("origin", "", "origin override (required with -file)")
	outPath := fs.String("o", "", "write the annotated page here instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	target := *pageURL
	if target == "" {
		target = *pageFile
	}
	if target == "" {
		return fmt.Errorf("one of -url or -file is required")
	}

	page, err := application.AnnotatePage(ctx, target, *origin)
	if err != nil {
		return err
	}

	if *outPath != "" {
		return os.WriteFile(*outPath, []byte(page), 0o644)
	}
	fmt.Println(page)
	return nil
}

func runSettings(ctx context.Context, application *app.Application, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: pricescanner settings <get|set> [flags]")
	}

	switch args[0] {
	case "get":
		settings, err := application.Settings(ctx)
		if err != nil {
			return err
		}
		printSettings(settings)
		return nil
	case "set":
		return setSettings(ctx, application, args[1:])
	default:
		return fmt.Errorf("unknown settings command %q", args[0])
	}
}

func setSettings(ctx context.Context, application *app.Application, args []string) error {
	current, err := application.Settings(ctx)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("settings set", flag.ExitOnError)
	monthly := fs.Float64("monthly", current.MonthlySalary, "monthly salary")
	hourly := fs.Float64("hourly", current.HourlyWage, "hourly wage")
	daily := fs.Float64("daily-hours", current.DailyHours, "working hours per day")
	days := fs.Float64("days-per-week", current.WorkingDaysPerWeek, "working days per week")
	currency := fs.String("currency", current.Currency, "currency code")
	inputType := fs.String("input", string(current.InputType), "active salary input: monthly or hourly")
	enabled := fs.Bool("enabled", current.Enabled, "whether annotation is enabled")
	if err := fs.Parse(args); err != nil {
		return err
	}

	next := domain.UserSettings{
		MonthlySalary:      *monthly,
		HourlyWage:         *hourly,
		DailyHours:         *daily,
		WorkingDaysPerWeek: *days,
		Currency:           *currency,
		InputType:          domain.InputType(*inputType),
		Enabled:            *enabled,
	}
	if next.InputType != domain.InputMonthly && next.InputType != domain.InputHourly {
		return fmt.Errorf("input must be %q or %q", domain.InputMonthly, domain.InputHourly)
	}

	if err := application.SaveSettings(ctx, next); err != nil {
		return err
	}
	printSettings(next)
	return nil
}

func printSettings(s domain.UserSettings) {
	fmt.Printf("monthlySalary:      %.2f\n", s.MonthlySalary)
	fmt.Printf("hourlyWage:         %.2f\n", s.HourlyWage)
	fmt.Printf("dailyHours:         %.1f\n", s.DailyHours)
	fmt.Printf("workingDaysPerWeek: %.0f\n", s.WorkingDaysPerWeek)
	fmt.Printf("currency:           %s\n", s.Currency)
	fmt.Printf("inputType:          %s\n", s.InputType)
	fmt.Printf("enabled:            %t\n", s.Enabled)
}
