package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/pkg/errs"
	"rental-pricing/internal/pkg/formtime"
	"rental-pricing/internal/pkg/money"
	"rental-pricing/internal/pkg/ratetext"

	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

type options struct {
	start     string
	end       string
	equipment []string
	studios   []string
	staff     []string
	locale    string
	symbol    string
	timezone  string
	markers   []string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "quotecalc",
		Short: "Price a studio/equipment booking from the terminal",
		Long: `Computes rental days, per-group subtotals and the total for a booking.

Each --equipment, --studio and --staff value is either a plain daily rate
("1500", "1,500") or an option label carrying one ("Sony FX3 (฿1,500/วัน)").
Staff are listed but never priced.`,
		Example: `  quotecalc --start 2024-01-01T10:00 --end 2024-01-01T18:00 --equipment 500 --studio "Studio A (฿1,500/วัน)"
  quotecalc --start "01/01/2024 10" --end "03/01/2024 9:30" --equipment 800`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("quotecalc v{{.Version}}\n")

	f := cmd.Flags()
	f.StringVar(&opts.start, "start", "", "Booking start (RFC3339, YYYY-MM-DDTHH:MM or \"DD/MM/YYYY HH[:MM[:SS]]\")")
	f.StringVar(&opts.end, "end", "", "Booking end, same formats as --start")
	f.StringArrayVar(&opts.equipment, "equipment", nil, "Equipment daily rate or option label (repeatable)")
	f.StringArrayVar(&opts.studios, "studio", nil, "Studio daily rate or option label (repeatable)")
	f.StringArrayVar(&opts.staff, "staff", nil, "Staff member to list on the quote (repeatable, never priced)")
	f.StringVar(&opts.locale, "locale", "th-TH", "Locale for number formatting")
	f.StringVar(&opts.symbol, "symbol", money.DefaultSymbol, "Currency symbol")
	f.StringVar(&opts.timezone, "tz", "Asia/Bangkok", "Timezone for inputs without an offset")
	f.StringSliceVar(&opts.markers, "marker", []string{ratetext.DefaultMarker}, "Currency markers recognised in labels")

	return cmd
}

func run(out io.Writer, opts options) error {
	loc, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return errs.Wrapf(err, "unknown timezone %q", opts.timezone)
	}

	start, err := parseInstant(opts.start, loc)
	if err != nil {
		return errs.Wrap(err, "--start")
	}
	end, err := parseInstant(opts.end, loc)
	if err != nil {
		return errs.Wrap(err, "--end")
	}

	parser := ratetext.NewParser(opts.markers...)
	snapshot := pricing.Snapshot{
		Start: start,
		End:   end,
		Groups: []pricing.Group{
			pricing.NewGroup(pricing.GroupEquipment, lineItems(parser, opts.equipment)...),
			pricing.NewGroup(pricing.GroupStudios, lineItems(parser, opts.studios)...),
			pricing.NewGroup(pricing.GroupStaff, lineItems(parser, opts.staff)...),
		},
	}

	result := pricing.NewDefaultCalculator().Quote(snapshot)
	printResult(out, money.NewFormatterFromLocale(opts.locale, opts.symbol), snapshot, result)
	return nil
}

func parseInstant(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, loc); err == nil {
		return &t, nil
	}
	date, clock, _ := strings.Cut(s, " ")
	return formtime.Combine(date, strings.TrimSpace(clock), loc)
}

// lineItems reads each value as a plain rate first and falls back to label parsing.
func lineItems(parser *ratetext.Parser, values []string) []pricing.LineItem {
	items := make([]pricing.LineItem, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		item := pricing.LineItem{Name: v, Quantity: 1}
		if f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64); err == nil {
			item.Rate = &f
		} else if rate, ok := parser.Parse(v); ok {
			item.Rate = &rate
		}
		items = append(items, item)
	}
	return items
}

func printResult(out io.Writer, f *money.Formatter, s pricing.Snapshot, r pricing.Result) {
	if err := s.Interval().Validate(); err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
	} else if !r.Valid() {
		fmt.Fprintln(out, "select both a start and an end time")
	}

	fmt.Fprintf(out, "days:      %d\n", r.Days)
	for _, g := range pricing.PricedGroups {
		if amount := r.Subtotal(g); amount != 0 {
			fmt.Fprintf(out, "%-10s %s\n", g.String()+":", f.Format(amount))
		}
	}
	fmt.Fprintf(out, "total:     %s\n", f.Format(r.Total))

	for _, g := range s.Groups {
		if g.Name != pricing.GroupStaff || len(g.Items) == 0 {
			continue
		}
		names := make([]string, len(g.Items))
		for i, it := range g.Items {
			names[i] = it.Name
		}
		fmt.Fprintf(out, "staff:     %s\n", strings.Join(names, ", "))
	}

	if r.LongRental() {
		fmt.Fprintf(out, "note: %d-day booking, check long-rental terms\n", r.Days)
	}
}
