// Package formtime normalizes the split date and time inputs of the admin
// booking form.
package formtime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "02/01/2006"
	ClockLayout = "15:04:05"
)

var (
	ErrInvalidDate  = errors.New("invalid date, expected DD/MM/YYYY")
	ErrInvalidClock = errors.New("invalid time, expected HH, HH:MM or HH:MM:SS")

	hourOnly     = regexp.MustCompile(`^\d{1,2}$`)
	hourMinute   = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
	hourMinSec   = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})$`)
	isoDateInput = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NormalizeClock completes shorthand clock input: "9" becomes "09:00:00" and
// "22:30" becomes "22:30:00".
func NormalizeClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	var h, m, sec string
	switch {
	case hourOnly.MatchString(s):
		h = s
	case hourMinute.MatchString(s):
		parts := hourMinute.FindStringSubmatch(s)
		h, m = parts[1], parts[2]
	case hourMinSec.MatchString(s):
		parts := hourMinSec.FindStringSubmatch(s)
		h, m, sec = parts[1], parts[2], parts[3]
	default:
		return "", false
	}

	hour, ok := bounded(h, 23)
	if !ok {
		return "", false
	}
	minute, ok := bounded(m, 59)
	if !ok {
		return "", false
	}
	second, ok := bounded(sec, 59)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second), true
}

func bounded(s string, upper int) (int, bool) {
	if s == "" {
		return 0, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > upper {
		return 0, false
	}
	return v, true
}

// ParseDate accepts the form's DD/MM/YYYY and the browser-native YYYY-MM-DD.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	layout := DateLayout
	if isoDateInput.MatchString(s) {
		layout = time.DateOnly
	}
	d, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// Combine joins a date and a clock field into one instant. An empty date
// means the bound has not been filled in and returns nil without error.
// An empty clock means midnight.
func Combine(date, clock string, loc *time.Location) (*time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if strings.TrimSpace(date) == "" {
		return nil, nil
	}
	d, err := ParseDate(date, loc)
	if err != nil {
		return nil, err
	}

	hms := "00:00:00"
	if strings.TrimSpace(clock) != "" {
		normalized, ok := NormalizeClock(clock)
		if !ok {
			return nil, ErrInvalidClock
		}
		hms = normalized
	}
	c, err := time.Parse(ClockLayout, hms)
	if err != nil {
		return nil, ErrInvalidClock
	}

	t := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, loc)
	return &t, nil
}

type Prefill struct {
	Date string
	Time string
}

// NowValues renders t the way the form's "today" and "now" shortcuts fill it in.
func NowValues(t time.Time) Prefill {
	return Prefill{
		Date: t.Format(DateLayout),
		Time: t.Format(ClockLayout),
	}
}
