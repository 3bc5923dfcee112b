// Package format renders dates, amounts and elapsed time for the dashboard.
package format

import (
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	isoDate     = "2006-01-02"
	displayDate = "Jan 2, 2006"

	// CurrencySymbol is the Indian rupee sign used for every amount.
	CurrencySymbol = "₹"
)

var printer = message.NewPrinter(language.English)

// FormatDate renders an ISO calendar date such as "2024-12-20" as "Dec 20, 2024".
// Date-only input is parsed in UTC and never shifted into the viewer's zone.
// Input that is not a calendar date is returned unchanged.
func FormatDate(iso string) string {
	d, err := time.ParseInLocation(isoDate, iso, time.UTC)
	if err != nil {
		if ts, tsErr := time.Parse(time.RFC3339, iso); tsErr == nil {
			return ts.Format(displayDate)
		}
		return iso
	}
	return d.Format(displayDate)
}

// FormatCurrency renders a whole rupee amount with thousands separators, e.g. ₹125,000.
func FormatCurrency(amount int64) string {
	if amount < 0 {
		// the magnitude is taken in uint64 so math.MinInt64 does not overflow
		return "-" + CurrencySymbol + printer.Sprintf("%d", uint64(-(amount+1))+1)
	}
	return CurrencySymbol + printer.Sprintf("%d", amount)
}

// FormatRelativeTime describes how long before now t happened ("30 minutes ago").
// It is evaluated once, at render time.
func FormatRelativeTime(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
