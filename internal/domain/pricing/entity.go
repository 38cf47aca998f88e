package pricing

type Result struct {
	Days      int
	Subtotals map[GroupName]float64
	Total     float64
}

// Valid is false for the canonical invalid-interval result. Callers use it to
// choose between a validation message and a priced summary.
func (r Result) Valid() bool {
	return r.Days > 0
}

func (r Result) LongRental() bool {
	return r.Days >= LongRentalThresholdDays
}

func (r Result) Subtotal(name GroupName) float64 {
	return r.Subtotals[name]
}
