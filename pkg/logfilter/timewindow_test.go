package logfilter

import (
	"errors"
	"testing"
	"time"
)

func TestParseWindowLookback(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lookback string
		wantMax  int64
	}{
		{"seconds short", "30s", now.Add(-30 * time.Second).UnixMilli()},
		{"minutes word", "10minutes", now.Add(-10 * time.Minute).UnixMilli()},
		{"hours hr", "2hr", now.Add(-2 * time.Hour).UnixMilli()},
		{"five days", "5d", now.Add(-5 * 24 * time.Hour).UnixMilli()},
		{"one week", "1w", now.Add(-7 * 24 * time.Hour).UnixMilli()},
		{"one month", "1month", now.Add(-30 * 24 * time.Hour).UnixMilli()},
		{"one year case-insensitive", "1YR", now.Add(-365 * 24 * time.Hour).UnixMilli()},
		{"spaced value", "3 h", now.Add(-3 * time.Hour).UnixMilli()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.lookback, "", now)
			if err != nil {
				t.Fatalf("ParseWindow(%q) error: %v", tt.lookback, err)
			}
			if w.MinTimestampMS != nil {
				t.Errorf("lookback must not set a min bound, got %d", *w.MinTimestampMS)
			}
			if w.MaxTimestampMS == nil || *w.MaxTimestampMS != tt.wantMax {
				t.Errorf("max bound = %v, want %d", w.MaxTimestampMS, tt.wantMax)
			}
		})
	}
}

func TestParseWindowRange(t *testing.T) {
	now := time.Now()

	w, err := ParseWindow("", "2024-01-01 to 2024-01-31", now)
	if err != nil {
		t.Fatalf("ParseWindow range error: %v", err)
	}
	wantMin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	wantMax := time.Date(2024, 1, 31, 23, 59, 59, 999000000, time.UTC).UnixMilli()
	if w.MinTimestampMS == nil || *w.MinTimestampMS != wantMin {
		t.Errorf("min = %v, want %d (start of day)", w.MinTimestampMS, wantMin)
	}
	if w.MaxTimestampMS == nil || *w.MaxTimestampMS != wantMax {
		t.Errorf("max = %v, want %d (end of day)", w.MaxTimestampMS, wantMax)
	}

	w, err = ParseWindow("", "2024-01-01-08:30:00 to 2024-01-01-09:00:00", now)
	if err != nil {
		t.Fatalf("ParseWindow time-qualified range error: %v", err)
	}
	wantMin = time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC).UnixMilli()
	wantMax = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC).UnixMilli()
	if w.MinTimestampMS == nil || *w.MinTimestampMS != wantMin {
		t.Errorf("min = %v, want %d", w.MinTimestampMS, wantMin)
	}
	if w.MaxTimestampMS == nil || *w.MaxTimestampMS != wantMax {
		t.Errorf("max = %v, want %d", w.MaxTimestampMS, wantMax)
	}
}

func TestParseWindowErrors(t *testing.T) {
	now := time.Now()

	if _, err := ParseWindow("5d", "2024-01-01 to 2024-01-31", now); !errors.Is(err, ErrConflictingWindow) {
		t.Errorf("both forms supplied: err = %v, want ErrConflictingWindow", err)
	}

	invalid := []struct {
		name     string
		lookback string
		rng      string
	}{
		{"garbage lookback", "yesterday", ""},
		{"unknown unit", "5fortnights", ""},
		{"missing value", "d", ""},
		{"overflowing lookback", "99999999999y", ""},
		{"range without separator", "", "2024-01-01 - 2024-01-31"},
		{"unparseable date", "", "2024-13-40 to 2024-01-31"},
		{"start after end", "", "2024-02-01 to 2024-01-01"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseWindow(tt.lookback, tt.rng, now); err == nil {
				t.Errorf("ParseWindow(%q, %q) expected error", tt.lookback, tt.rng)
			}
		})
	}
}

func TestParseWindowEmpty(t *testing.T) {
	w, err := ParseWindow("", "", time.Now())
	if err != nil {
		t.Fatalf("empty inputs must not error: %v", err)
	}
	if w.MinTimestampMS != nil || w.MaxTimestampMS != nil {
		t.Errorf("empty inputs must yield no bounds, got %+v", w)
	}
}
