package domain

import "time"

// Timeframe bounds an aggregation query. Values are case-sensitive; anything
// other than the three bounded values behaves as all-time.
type Timeframe string

const (
	TimeframeToday   Timeframe = "today"
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeAllTime Timeframe = "all-time"
)

// Cutoff returns the inclusive lower bound for transaction timestamps under
// this timeframe, relative to now. ok is false when no cutoff applies
// (all-time, or any unrecognized value).
func (tf Timeframe) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	switch tf {
	case TimeframeToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case TimeframeWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case TimeframeMonth:
		y, m, _ := now.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}
