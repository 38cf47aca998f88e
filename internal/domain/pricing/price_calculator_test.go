//go:build unit

package pricing_test

import (
	"math"
	"testing"
	"time"

	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/pkg/ptr"
	"rental-pricing/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func at(t *testing.T, s string) *time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02T15:04", s)
	require.NoError(t, err)
	return &v
}

func shift(base *time.Time, d time.Duration) *time.Time {
	v := base.Add(d)
	return &v
}

func TestDurationDays(t *testing.T) {
	start := at(t, "2024-01-01T00:00")

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  int
	}{
		{name: "start absent", start: nil, end: start, want: 0},
		{name: "end absent", start: start, end: nil, want: 0},
		{name: "both absent", start: nil, end: nil, want: 0},
		{name: "end equals start", start: start, end: start, want: 0},
		{name: "end before start", start: start, end: shift(start, -time.Hour), want: 0},
		{name: "one second", start: start, end: shift(start, time.Second), want: 1},
		{name: "eight hours", start: start, end: shift(start, 8*time.Hour), want: 1},
		{name: "just under a day", start: start, end: shift(start, 24*time.Hour-time.Second), want: 1},
		{name: "exactly one day", start: start, end: shift(start, 24*time.Hour), want: 1},
		{name: "twenty five hours", start: start, end: shift(start, 25*time.Hour), want: 2},
		{name: "exactly two days", start: start, end: shift(start, 48*time.Hour), want: 2},
		{name: "two days and a second", start: start, end: shift(start, 48*time.Hour+time.Second), want: 3},
		{name: "exactly a week", start: start, end: shift(start, 7*24*time.Hour), want: 7},
		{name: "long rental", start: start, end: shift(start, 400*24*time.Hour+time.Minute), want: 401},
		{name: "one nanosecond", start: start, end: shift(start, time.Nanosecond), want: 1},
		{name: "a day and a nanosecond", start: start, end: shift(start, 24*time.Hour+time.Nanosecond), want: 2},
		{name: "four centuries", start: at(t, "2000-01-01T00:00"), end: at(t, "2400-01-01T00:00"), want: 146097},
		{name: "four centuries and a second", start: at(t, "2000-01-01T00:00"), end: ptr.To(time.Date(2400, 1, 1, 0, 0, 1, 0, time.UTC)), want: 146098},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.DurationDays(tt.start, tt.end))
		})
	}
}

func TestDurationDays_SubSecondBorrow(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 900_000_000, time.UTC)

	exact := start.Add(24 * time.Hour)
	assert.Equal(t, 1, pricing.DurationDays(&start, &exact))

	// end's nanoseconds are below start's, so a second is borrowed
	over := time.Date(2024, 1, 2, 10, 0, 1, 100_000_000, time.UTC)
	assert.Equal(t, 2, pricing.DurationDays(&start, &over))
}

func TestDurationDays_MatchesCeiling(t *testing.T) {
	start := at(t, "2024-03-10T09:30")
	for minutes := 1; minutes <= 5*24*60; minutes += 37 {
		d := time.Duration(minutes) * time.Minute
		want := int(math.Ceil(d.Hours() / 24))
		assert.Equal(t, want, pricing.DurationDays(start, shift(start, d)), "duration %s", d)
	}
}

func TestDurationDays_UsesAbsoluteInstants(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, bangkok)
	end := time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC) // 10:00 ICT

	assert.Equal(t, 0, pricing.DurationDays(&start, &end))

	end = end.Add(time.Minute)
	assert.Equal(t, 1, pricing.DurationDays(&start, &end))
}

func TestComputeTotals(t *testing.T) {
	t.Run("zero days zeroes every subtotal", func(t *testing.T) {
		groups := []pricing.Group{
			builder.NewGroupBuilder(pricing.GroupEquipment).WithRates(100, 250).Build(),
			builder.NewGroupBuilder(pricing.GroupStudios).WithRates(1500).Build(),
		}

		actual := pricing.ComputeTotals(0, groups...)

		assert.Equal(t, 0, actual.Days)
		assert.False(t, actual.Valid())
		assert.Zero(t, actual.Total)
		want := map[pricing.GroupName]float64{pricing.GroupEquipment: 0, pricing.GroupStudios: 0}
		if diff := cmp.Diff(want, actual.Subtotals); diff != "" {
			t.Errorf("subtotals mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("three days with two items", func(t *testing.T) {
		equipment := builder.NewGroupBuilder(pricing.GroupEquipment).WithRates(100, 250).Build()

		actual := pricing.ComputeTotals(3, equipment)

		assert.InDelta(t, 1050, actual.Subtotal(pricing.GroupEquipment), tolerance)
		assert.InDelta(t, 1050, actual.Total, tolerance)
	})

	t.Run("total sums both groups", func(t *testing.T) {
		equipment := builder.NewGroupBuilder(pricing.GroupEquipment).WithRates(100, 250).Build()
		studios := builder.NewGroupBuilder(pricing.GroupStudios).WithRates(1500).Build()

		actual := pricing.ComputeTotals(2, equipment, studios)

		assert.InDelta(t, 700, actual.Subtotal(pricing.GroupEquipment), tolerance)
		assert.InDelta(t, 3000, actual.Subtotal(pricing.GroupStudios), tolerance)
		assert.InDelta(t, 3700, actual.Total, tolerance)
	})

	t.Run("unusable rates contribute nothing", func(t *testing.T) {
		nan := math.NaN()
		inf := math.Inf(1)
		negative := -20.0
		good := 300.0
		equipment := pricing.NewGroup(pricing.GroupEquipment,
			pricing.LineItem{Name: "absent"},
			pricing.LineItem{Name: "nan", Rate: &nan},
			pricing.LineItem{Name: "inf", Rate: &inf},
			pricing.LineItem{Name: "negative", Rate: &negative},
			pricing.LineItem{Name: "good", Rate: &good},
		)

		actual := pricing.ComputeTotals(2, equipment)

		assert.InDelta(t, 600, actual.Subtotal(pricing.GroupEquipment), tolerance)
		assert.InDelta(t, 600, actual.Total, tolerance)
	})

	t.Run("quantity multiplies the rate", func(t *testing.T) {
		rate := 200.0
		equipment := pricing.NewGroup(pricing.GroupEquipment,
			pricing.LineItem{Name: "lights", Rate: &rate, Quantity: 3},
			pricing.LineItem{Name: "default quantity", Rate: &rate},
		)

		actual := pricing.ComputeTotals(2, equipment)

		assert.InDelta(t, 1600, actual.Total, tolerance)
	})

	t.Run("empty groups still report a zero subtotal", func(t *testing.T) {
		actual := pricing.ComputeTotals(4, pricing.NewGroup(pricing.GroupStudios))

		subtotal, ok := actual.Subtotals[pricing.GroupStudios]
		assert.True(t, ok)
		assert.Zero(t, subtotal)
		assert.True(t, actual.Valid())
	})

	t.Run("repeated group names accumulate", func(t *testing.T) {
		a := builder.NewGroupBuilder(pricing.GroupEquipment).WithRates(100).Build()
		b := builder.NewGroupBuilder(pricing.GroupEquipment).WithRates(50).Build()

		actual := pricing.ComputeTotals(1, a, b)

		assert.InDelta(t, 150, actual.Subtotal(pricing.GroupEquipment), tolerance)
		assert.InDelta(t, 150, actual.Total, tolerance)
	})

	t.Run("negative days behave like zero", func(t *testing.T) {
		equipment := builder.NewGroupBuilder(pricing.GroupEquipment).WithRates(100).Build()

		actual := pricing.ComputeTotals(-2, equipment)

		assert.Equal(t, 0, actual.Days)
		assert.Zero(t, actual.Total)
	})

	t.Run("idempotent", func(t *testing.T) {
		groups := []pricing.Group{
			builder.NewGroupBuilder(pricing.GroupEquipment).WithRates(0.1, 0.2, 1234.56).Build(),
			builder.NewGroupBuilder(pricing.GroupStudios).WithRates(999.99).Build(),
		}

		first := pricing.ComputeTotals(5, groups...)
		second := pricing.ComputeTotals(5, groups...)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("results differ (-first +second):\n%s", diff)
		}
		assert.Equal(t, math.Float64bits(first.Total), math.Float64bits(second.Total))
	})
}

func TestDefaultCalculator_Quote(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	t.Run("eight hour booking bills one day", func(t *testing.T) {
		snapshot := builder.NewSnapshotBuilder().
			Between(at(t, "2024-01-01T10:00"), at(t, "2024-01-01T18:00")).
			WithGroup(builder.NewGroupBuilder(pricing.GroupEquipment).WithRates(500).Build()).
			Build()

		actual := calc.Quote(snapshot)

		assert.Equal(t, 1, actual.Days)
		assert.InDelta(t, 500, actual.Subtotal(pricing.GroupEquipment), tolerance)
		assert.InDelta(t, 500, actual.Total, tolerance)
		assert.False(t, actual.LongRental())
	})

	t.Run("seven full days trigger the advisory", func(t *testing.T) {
		snapshot := builder.NewSnapshotBuilder().
			Between(at(t, "2024-01-01T00:00"), at(t, "2024-01-08T00:00")).
			Build()

		actual := calc.Quote(snapshot)

		assert.Equal(t, 7, actual.Days)
		assert.True(t, actual.LongRental())
	})

	t.Run("missing start yields zero", func(t *testing.T) {
		snapshot := builder.NewSnapshotBuilder().
			Between(nil, at(t, "2024-01-08T00:00")).
			WithGroup(builder.NewGroupBuilder(pricing.GroupStudios).WithRates(1500).Build()).
			Build()

		actual := calc.Quote(snapshot)

		assert.Equal(t, 0, actual.Days)
		assert.Zero(t, actual.Total)
	})

	t.Run("staff are never priced", func(t *testing.T) {
		snapshot := builder.NewSnapshotBuilder().
			Between(at(t, "2024-01-01T00:00"), at(t, "2024-01-03T00:00")).
			WithGroup(builder.NewGroupBuilder(pricing.GroupStaff).WithRates(800).Build()).
			WithGroup(builder.NewGroupBuilder(pricing.GroupStudios).WithRates(1000).Build()).
			Build()

		actual := calc.Quote(snapshot)

		_, hasStaff := actual.Subtotals[pricing.GroupStaff]
		assert.False(t, hasStaff)
		assert.InDelta(t, 2000, actual.Total, tolerance)
	})
}
