package queries

import (
	"rental-pricing/internal/pkg/ratetext"
)

// RateResolver prefers an explicit rate and falls back to the option label.
type RateResolver interface {
	Resolve(rate *float64, label *string) *float64
}

type labelRateResolver struct {
	parser *ratetext.Parser
}

func NewRateResolver(parser *ratetext.Parser) RateResolver {
	if parser == nil {
		parser = ratetext.NewParser()
	}
	return &labelRateResolver{parser: parser}
}

func (r *labelRateResolver) Resolve(rate *float64, label *string) *float64 {
	if rate != nil {
		return rate
	}
	return r.parser.RateOrNil(label)
}
