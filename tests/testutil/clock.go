package testutil

import (
	"time"

	"github.com/light-bringer/lumina-store/internal/pkg/clock"
)

// ReportNow is the reference instant report tests freeze time at. It sits
// mid-afternoon so fixtures placed a few minutes or days earlier never
// straddle the day boundary the report buckets on.
var ReportNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

// NewReportClock returns a controllable clock frozen at ReportNow.
func NewReportClock() *clock.MockClock {
	return clock.NewMockClock(ReportNow)
}

// DaysAgo returns the instant n days before ReportNow.
func DaysAgo(n int) time.Time {
	return ReportNow.AddDate(0, 0, -n)
}
