package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "date_only", in: "2024-12-20", want: "Dec 20, 2024"},
		{name: "single_digit_day", in: "2025-01-02", want: "Jan 2, 2025"},
		{name: "rfc3339", in: "2023-12-10T08:30:00Z", want: "Dec 10, 2023"},
		{name: "not_a_date", in: "soon", want: "soon"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FormatDate(tc.in))
		})
	}
}

func TestFormatDate_IgnoresLocalZone(t *testing.T) {
	// date-only values must not move a day when the process runs west of UTC
	previous := time.Local
	time.Local = time.FixedZone("UTC-10", -10*60*60)
	t.Cleanup(func() { time.Local = previous })

	require.Equal(t, "Dec 20, 2024", FormatDate("2024-12-20"))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "thousands", amount: 125000, want: "₹125,000"},
		{name: "hundreds_of_thousands", amount: 750000, want: "₹750,000"},
		{name: "millions", amount: 1250000, want: "₹1,250,000"},
		{name: "small", amount: 999, want: "₹999"},
		{name: "zero", amount: 0, want: "₹0"},
		{name: "negative", amount: -1500, want: "-₹1,500"},
		{name: "negative_one", amount: -1, want: "-₹1"},
		{name: "max_int64", amount: math.MaxInt64, want: "₹9,223,372,036,854,775,807"},
		{name: "min_int64", amount: math.MinInt64, want: "-₹9,223,372,036,854,775,808"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FormatCurrency(tc.amount))
		})
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 12, 23, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{name: "just_now", ago: 0, want: "now"},
		{name: "thirty_minutes", ago: 30 * time.Minute, want: "30 minutes ago"},
		{name: "two_hours", ago: 2 * time.Hour, want: "2 hours ago"},
		{name: "three_hours", ago: 3 * time.Hour, want: "3 hours ago"},
		{name: "one_day", ago: 24 * time.Hour, want: "1 day ago"},
		{name: "future", ago: -2 * time.Hour, want: "2 hours from now"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FormatRelativeTime(now.Add(-tc.ago), now))
		})
	}
}
