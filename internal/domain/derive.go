package domain

import (
	"strings"
	"time"
)

// Derived attributes are computed from stored state at read time and never
// persisted. They are plain functions called when assembling responses.

// Age returns whole years between birthDate and now. The boundary is the
// anniversary: one day before the 30th birthday the age is still 29.
func Age(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()
	anniversary := birthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// GenderLabel maps the stored gender to its display label. The mapping is
// binary: only "male" is distinguished, any other value gets the female
// label.
func GenderLabel(gender string) string {
	if gender == GenderMale {
		return "Laki-laki"
	}
	return "Perempuan"
}

// FileURL builds a public URL for a stored file path, or nil when no file
// is stored.
func FileURL(baseURL, path string) *string {
	if path == "" {
		return nil
	}
	url := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	return &url
}

// LastPosition returns the member's currently active position: the first
// entry with no end date. At most one open position per member is a
// write-side invariant; if it is violated the first encountered wins.
func LastPosition(positions []Position) *Position {
	for i := range positions {
		if positions[i].EndDate == nil {
			return &positions[i]
		}
	}
	return nil
}
