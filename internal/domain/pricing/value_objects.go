package pricing

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEndNotAfterStart = errors.New("end time must be after start time")
	ErrUnknownGroup     = errors.New("unknown line item group")
)

type Interval struct {
	start *time.Time
	end   *time.Time
}

func NewInterval(start, end *time.Time) Interval {
	return Interval{start: start, end: end}
}

func (i Interval) Start() *time.Time { return i.start }
func (i Interval) End() *time.Time   { return i.end }

func (i Interval) IsComplete() bool {
	return i.start != nil && i.end != nil
}

func (i Interval) IsValid() bool {
	return i.IsComplete() && i.end.After(*i.start)
}

// Validate only complains once both bounds are present; a missing bound is
// "not filled in yet" rather than wrong.
func (i Interval) Validate() error {
	if !i.IsComplete() {
		return nil
	}
	if !i.end.After(*i.start) {
		return ErrEndNotAfterStart
	}
	return nil
}

func (i Interval) Days() int {
	return DurationDays(i.start, i.end)
}

type LineItem struct {
	ID       uuid.UUID
	Name     string
	Rate     *float64
	Quantity int
}

func NewLineItem(id uuid.UUID, name string, rate *float64) LineItem {
	return LineItem{ID: id, Name: name, Rate: rate, Quantity: 1}
}

// RatePerDay degrades anything unusable to zero.
func (li LineItem) RatePerDay() float64 {
	if li.Rate == nil {
		return 0
	}
	r := *li.Rate
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return 0
	}
	return r
}

func (li LineItem) Units() int {
	if li.Quantity <= 0 {
		return 1
	}
	return li.Quantity
}

type Group struct {
	Name  GroupName
	Items []LineItem
}

func NewGroup(name GroupName, items ...LineItem) Group {
	return Group{Name: name, Items: items}
}

func (g Group) DailyRate() float64 {
	var sum float64
	for _, it := range g.Items {
		sum += it.RatePerDay() * float64(it.Units())
	}
	return sum
}
