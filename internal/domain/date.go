package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Date is a calendar day with no time of day or location attached.
// Due-date arithmetic always works on Date so that adding days never
// drifts across DST or timezone boundaries.
type Date = civil.Date

// DateLayout is the ISO layout used inside task filenames.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string. Out-of-range months or days fail.
func ParseDate(s string) (Date, error) {
	return civil.ParseDate(s)
}

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) Date {
	return civil.DateOf(t)
}

// Today returns the current local calendar date.
func Today() Date {
	return civil.DateOf(time.Now())
}
