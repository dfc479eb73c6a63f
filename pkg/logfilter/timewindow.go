package logfilter

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeWindow bounds log timestamps in epoch milliseconds. A nil bound means
// unbounded on that side.
type TimeWindow struct {
	MinTimestampMS *int64
	MaxTimestampMS *int64
}

// ErrConflictingWindow is returned when both a lookback and an absolute
// range are supplied; the two forms are mutually exclusive.
var ErrConflictingWindow = errors.New("lookback and range are mutually exclusive")

var lookbackPattern = regexp.MustCompile(`^(\d+)\s*([a-zA-Z]+)$`)

// Unit durations. Months and years are calendar-agnostic fixed spans; the
// purge path only needs a coarse age cutoff.
var lookbackUnits = map[string]time.Duration{
	"s": time.Second, "sec": time.Second, "second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"d": 24 * time.Hour, "day": 24 * time.Hour, "days": 24 * time.Hour,
	"w": 7 * 24 * time.Hour, "week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
	"month": 30 * 24 * time.Hour, "months": 30 * 24 * time.Hour,
	"y": 365 * 24 * time.Hour, "yr": 365 * 24 * time.Hour, "year": 365 * 24 * time.Hour, "years": 365 * 24 * time.Hour,
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02-15:04:05"
)

// ParseWindow resolves the lookback / absolute-range inputs into a window.
//
// Lookback selects "logs at or before this age": "5d" yields a max bound of
// now-5d and no min bound, which is what the purge path uses to delete
// anything older than the window. The range form "<start> to <end>" accepts
// YYYY-MM-DD or YYYY-MM-DD-HH:mm:ss per side, UTC; a date-only start is
// floored to 00:00:00.000 and a date-only end is ceiled to 23:59:59.999.
//
// Supplying both forms is an input error. Supplying neither yields a window
// with no bounds at all.
func ParseWindow(lookback, timeRange string, now time.Time) (TimeWindow, error) {
	lookback = strings.TrimSpace(lookback)
	timeRange = strings.TrimSpace(timeRange)

	if lookback != "" && timeRange != "" {
		return TimeWindow{}, ErrConflictingWindow
	}

	if lookback != "" {
		maxMS, err := parseLookback(lookback, now)
		if err != nil {
			return TimeWindow{}, err
		}
		return TimeWindow{MaxTimestampMS: &maxMS}, nil
	}

	if timeRange != "" {
		return parseRange(timeRange)
	}

	return TimeWindow{}, nil
}

func parseLookback(s string, now time.Time) (int64, error) {
	m := lookbackPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid lookback %q", s)
	}

	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid lookback value %q", m[1])
	}

	unit, ok := lookbackUnits[strings.ToLower(m[2])]
	if !ok {
		return 0, fmt.Errorf("invalid lookback unit %q", m[2])
	}
	// value*unit must not overflow the duration; a wrapped product would
	// silently turn an absurd lookback into a bound a purge acts on.
	if value > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("lookback %q is too large", s)
	}

	return now.UTC().Add(-time.Duration(value) * unit).UnixMilli(), nil
}

func parseRange(s string) (TimeWindow, error) {
	parts := strings.Split(s, " to ")
	if len(parts) != 2 {
		return TimeWindow{}, fmt.Errorf("invalid time range %q", s)
	}

	start, err := parseRangeBound(strings.TrimSpace(parts[0]), false)
	if err != nil {
		return TimeWindow{}, err
	}
	end, err := parseRangeBound(strings.TrimSpace(parts[1]), true)
	if err != nil {
		return TimeWindow{}, err
	}

	if start > end {
		return TimeWindow{}, fmt.Errorf("time range start is after end in %q", s)
	}

	return TimeWindow{MinTimestampMS: &start, MaxTimestampMS: &end}, nil
}

func parseRangeBound(s string, isEnd bool) (int64, error) {
	if t, err := time.ParseInLocation(dateTimeLayout, s, time.UTC); err == nil {
		return t.UnixMilli(), nil
	}

	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid time bound %q", s)
	}

	if isEnd {
		// End of the named day, millisecond precision.
		return t.Add(24*time.Hour - time.Millisecond).UnixMilli(), nil
	}
	return t.UnixMilli(), nil
}
