package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/dayofyear/internal/calendar"
	"github.com/username/dayofyear/internal/config"
	"github.com/username/dayofyear/internal/input"
	"github.com/username/dayofyear/pkg/dateutil"
	"go.uber.org/zap"
)

var (
	strictMode   bool
	outputFormat string
	dateString   string
)

// addComputeFlags registers the compute-only flags. They are local
// flags so from-ordinal, where neither applies, rejects them.
func addComputeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&strictMode, "strict", false, "Reject out-of-range day values instead of clamping")
	cmd.Flags().StringVar(&dateString, "date", "", "Date string (e.g. 2024-03-01, 01.03.2024 or 'today') instead of year month day")
}

func computeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute [year month day]",
		Short: "Compute the ordinal day of year for a date",
		Args:  cobra.MaximumNArgs(3),
		RunE:  runCompute,
	}
	addComputeFlags(cmd)
	return cmd
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	date, err := resolveDate(args)
	if err != nil {
		return err
	}

	mode := cfg.Mode
	if strictMode {
		mode = config.ModeStrict
	}

	var ordinal int
	if mode == config.ModeStrict {
		ordinal, err = calendar.OrdinalDayStrict(date.Year, date.Month, date.Day)
		if err != nil {
			return err
		}
	} else {
		// Clamp mode still refuses months the table cannot index.
		if err := calendar.ValidateMonth(date.Month); err != nil {
			return err
		}
		ordinal = calendar.OrdinalDay(date.Year, date.Month, date.Day)
	}

	logger.Debug("Computed ordinal day",
		zap.Int("year", date.Year),
		zap.Int("month", date.Month),
		zap.Int("day", date.Day),
		zap.String("mode", mode),
		zap.Int("ordinal", ordinal))

	return writeResult(cmd, cfg, date, ordinal)
}

// resolveDate picks the input source: --date string, positional
// arguments, or three integers from stdin
func resolveDate(args []string) (input.Date, error) {
	if dateString != "" {
		var t time.Time
		if strings.EqualFold(dateString, "today") {
			t = dateutil.Today()
		} else {
			var err error
			t, err = dateutil.ParseDate(dateString)
			if err != nil {
				return input.Date{}, err
			}
		}
		return input.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
	}

	if len(args) > 0 {
		return input.ParseArgs(args)
	}

	return input.ReadDate(os.Stdin)
}

type computeResult struct {
	Year    int  `json:"year"`
	Month   int  `json:"month"`
	Day     int  `json:"day"`
	Ordinal int  `json:"ordinal"`
	Leap    bool `json:"leap"`
}

// resolveFormat returns the configured output format, with the --format
// flag taking precedence
func resolveFormat(cfg *config.Config) string {
	if outputFormat != "" {
		return outputFormat
	}
	return cfg.Output.Format
}

func writeResult(cmd *cobra.Command, cfg *config.Config, date input.Date, ordinal int) error {
	out := cmd.OutOrStdout()

	switch format := resolveFormat(cfg); format {
	case config.FormatJSON:
		result := computeResult{
			Year:    date.Year,
			Month:   date.Month,
			Day:     date.Day,
			Ordinal: ordinal,
			Leap:    calendar.IsLeapYear(date.Year),
		}
		return json.NewEncoder(out).Encode(result)

	case config.FormatPlain:
		if cfg.Output.Newline {
			fmt.Fprintln(out, ordinal)
		} else {
			fmt.Fprint(out, ordinal)
		}
		return nil

	default:
		return fmt.Errorf("output format must be '%s' or '%s', got '%s'", config.FormatPlain, config.FormatJSON, format)
	}
}

// writeDate prints a resolved calendar date. The plain form is the ISO
// date itself; the ordinal would only echo the input back.
func writeDate(cmd *cobra.Command, cfg *config.Config, date input.Date, ordinal int) error {
	out := cmd.OutOrStdout()

	switch format := resolveFormat(cfg); format {
	case config.FormatJSON:
		result := computeResult{
			Year:    date.Year,
			Month:   date.Month,
			Day:     date.Day,
			Ordinal: ordinal,
			Leap:    calendar.IsLeapYear(date.Year),
		}
		return json.NewEncoder(out).Encode(result)

	case config.FormatPlain:
		text := fmt.Sprintf("%04d-%02d-%02d", date.Year, date.Month, date.Day)
		if cfg.Output.Newline {
			fmt.Fprintln(out, text)
		} else {
			fmt.Fprint(out, text)
		}
		return nil

	default:
		return fmt.Errorf("output format must be '%s' or '%s', got '%s'", config.FormatPlain, config.FormatJSON, format)
	}
}

func fromOrdinalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-ordinal <year> <ordinal>",
		Short: "Convert an ordinal day of year back to a calendar date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: expected an integer", args[0])
			}
			ordinal, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid ordinal %q: expected an integer", args[1])
			}

			month, day, err := calendar.DateOfOrdinal(year, ordinal)
			if err != nil {
				return err
			}

			logger.Debug("Resolved ordinal day",
				zap.Int("year", year),
				zap.Int("ordinal", ordinal),
				zap.Int("month", int(month)),
				zap.Int("day", day))

			return writeDate(cmd, cfg, input.Date{Year: year, Month: int(month), Day: day}, ordinal)
		},
	}
}
