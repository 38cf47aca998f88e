package queries

import (
	"context"
	"time"

	"rental-pricing/internal/pkg/clock"
	"rental-pricing/internal/pkg/formtime"
)

type FormNowView struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	TimeZone string `json:"timezone"`
}

type FormQueries interface {
	Now(ctx context.Context) FormNowView
}

type formQueriesImpl struct {
	clock clock.Clock
	loc   *time.Location
}

func NewFormQueries(clk clock.Clock, loc *time.Location) FormQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &formQueriesImpl{clock: clk, loc: loc}
}

func (q *formQueriesImpl) Now(_ context.Context) FormNowView {
	prefill := formtime.NowValues(q.clock.Now().In(q.loc))
	return FormNowView{
		Date:     prefill.Date,
		Time:     prefill.Time,
		TimeZone: q.loc.String(),
	}
}
