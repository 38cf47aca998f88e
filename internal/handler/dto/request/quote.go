package request

import (
	"time"

	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/pkg/errs"
	"rental-pricing/internal/pkg/formtime"
	"rental-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteItemRequest struct {
	Group    string   `json:"group" binding:"required,oneof=equipment studios staff"`
	Name     string   `json:"name" binding:"max=200"`
	Rate     *float64 `json:"rate" binding:"omitempty,min=0"`
	Label    *string  `json:"label" binding:"omitempty,max=500"`
	Quantity int      `json:"quantity" binding:"omitempty,min=1,max=1000"`
}

// QuoteRequest accepts either RFC3339 instants or the admin form's split
// date and clock fields. Instants win when both are sent.
type QuoteRequest struct {
	StartTime  *time.Time         `json:"start_time"`
	EndTime    *time.Time         `json:"end_time"`
	StartDate  string             `json:"start_date" binding:"max=10"`
	StartClock string             `json:"start_clock" binding:"max=8"`
	EndDate    string             `json:"end_date" binding:"max=10"`
	EndClock   string             `json:"end_clock" binding:"max=8"`
	Equipment  []uuid.UUID        `json:"equipment" binding:"max=200"`
	Studios    []uuid.UUID        `json:"studios" binding:"max=50"`
	Staff      []uuid.UUID        `json:"staff" binding:"max=50"`
	Items      []QuoteItemRequest `json:"items" binding:"max=200,dive"`
}

func (r *QuoteRequest) ToParams(loc *time.Location) (queries.QuoteParams, error) {
	start, err := boundary(r.StartTime, r.StartDate, r.StartClock, loc)
	if err != nil {
		return queries.QuoteParams{}, invalidBoundary("start", err)
	}
	end, err := boundary(r.EndTime, r.EndDate, r.EndClock, loc)
	if err != nil {
		return queries.QuoteParams{}, invalidBoundary("end", err)
	}

	params := queries.QuoteParams{
		Start:      start,
		End:        end,
		Selections: map[pricing.GroupName][]uuid.UUID{},
	}
	for g, ids := range map[pricing.GroupName][]uuid.UUID{
		pricing.GroupEquipment: r.Equipment,
		pricing.GroupStudios:   r.Studios,
		pricing.GroupStaff:     r.Staff,
	} {
		if len(ids) > 0 {
			params.Selections[g] = ids
		}
	}
	for _, it := range r.Items {
		params.AdHoc = append(params.AdHoc, queries.AdHocItem{
			Group:    it.Group,
			Name:     it.Name,
			Rate:     it.Rate,
			Label:    it.Label,
			Quantity: it.Quantity,
		})
	}
	return params, nil
}

// the hint becomes the response detail, e.g. "start: invalid date, expected DD/MM/YYYY"
func invalidBoundary(field string, err error) error {
	return errs.WithHint(errs.Mark(errs.Wrap(err, field), queries.ErrInvalidQuoteInput), field+": "+err.Error())
}

func boundary(instant *time.Time, date, clock string, loc *time.Location) (*time.Time, error) {
	if instant != nil {
		t := *instant
		return &t, nil
	}
	return formtime.Combine(date, clock, loc)
}
