package pricing

import (
	"time"
)

const (
	secondsPerDay = int64(24 * time.Hour / time.Second)

	// LongRentalThresholdDays triggers the long-rental advisory; pricing is unaffected.
	LongRentalThresholdDays = 7
)

// DurationDays returns the number of billable days between start and end.
// Any positive duration bills at least one day and partial days round up.
// A missing bound or end <= start yields 0.
func DurationDays(start, end *time.Time) int {
	if start == nil || end == nil {
		return 0
	}
	if !end.After(*start) {
		return 0
	}
	// wall seconds, since time.Duration overflows after ~292 years
	secs := end.Unix() - start.Unix()
	nanos := end.Nanosecond() - start.Nanosecond()
	if nanos < 0 {
		secs--
		nanos += int(time.Second)
	}
	days := secs / secondsPerDay
	if secs%secondsPerDay != 0 || nanos > 0 {
		days++
	}
	return int(days)
}

// ComputeTotals prices every group for the given number of days.
// Each passed group gets a subtotal entry, even when it is zero.
func ComputeTotals(days int, groups ...Group) Result {
	result := Result{
		Days:      max(days, 0),
		Subtotals: make(map[GroupName]float64, len(groups)),
	}
	for _, g := range groups {
		if _, ok := result.Subtotals[g.Name]; !ok {
			result.Subtotals[g.Name] = 0
		}
	}
	if result.Days == 0 {
		return result
	}

	d := float64(result.Days)
	for _, g := range groups {
		subtotal := result.Subtotals[g.Name]
		for _, it := range g.Items {
			subtotal += it.RatePerDay() * float64(it.Units()) * d
		}
		result.Subtotals[g.Name] = subtotal
	}
	for _, name := range orderedNames(groups) {
		result.Total += result.Subtotals[name]
	}
	return result
}

// orderedNames keeps first-seen order so Total is summed deterministically.
func orderedNames(groups []Group) []GroupName {
	seen := make(map[GroupName]struct{}, len(groups))
	names := make([]GroupName, 0, len(groups))
	for _, g := range groups {
		if _, ok := seen[g.Name]; ok {
			continue
		}
		seen[g.Name] = struct{}{}
		names = append(names, g.Name)
	}
	return names
}

type Snapshot struct {
	Start  *time.Time
	End    *time.Time
	Groups []Group
}

func (s Snapshot) Interval() Interval {
	return NewInterval(s.Start, s.End)
}

type Calculator interface {
	Quote(snapshot Snapshot) Result
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (c *DefaultCalculator) Quote(snapshot Snapshot) Result {
	days := DurationDays(snapshot.Start, snapshot.End)

	priced := make([]Group, 0, len(snapshot.Groups))
	for _, g := range snapshot.Groups {
		if g.Name.IsPriced() {
			priced = append(priced, g)
		}
	}
	return ComputeTotals(days, priced...)
}
