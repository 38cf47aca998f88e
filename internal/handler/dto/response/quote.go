package response

import (
	"time"

	"rental-pricing/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SubtotalResponse struct {
	Group   string  `json:"group"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

type SelectedItemResponse struct {
	ID       *string  `json:"id,omitempty"`
	Name     string   `json:"name"`
	Rate     *float64 `json:"rate,omitempty"`
	Quantity int      `json:"quantity"`
}

type SelectedGroupResponse struct {
	Group string                 `json:"group"`
	Items []SelectedItemResponse `json:"items"`
}

type QuoteResponse struct {
	Start            *time.Time              `json:"start_time,omitempty"`
	End              *time.Time              `json:"end_time,omitempty"`
	Days             int                     `json:"days"`
	Valid            bool                    `json:"valid"`
	NeedsInterval    bool                    `json:"needs_interval"`
	IntervalError    *string                 `json:"interval_error,omitempty"`
	Subtotals        []SubtotalResponse      `json:"subtotals"`
	Total            float64                 `json:"total"`
	TotalDisplay     string                  `json:"total_display"`
	DailyRate        float64                 `json:"daily_rate"`
	DailyRateDisplay string                  `json:"daily_rate_display"`
	LongRental       bool                    `json:"long_rental"`
	Selected         []SelectedGroupResponse `json:"selected" copier:"-"`
}

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	res := &QuoteResponse{}
	if err := copier.CopyWithOption(res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	// uuid -> string is not a conversion copier knows, so the listing is mapped by hand
	res.Selected = make([]SelectedGroupResponse, len(v.Selected))
	for i, g := range v.Selected {
		items := make([]SelectedItemResponse, len(g.Items))
		for j, it := range g.Items {
			items[j] = SelectedItemResponse{Name: it.Name, Rate: it.Rate, Quantity: it.Quantity}
			if it.ID != nil {
				id := it.ID.String()
				items[j].ID = &id
			}
		}
		res.Selected[i] = SelectedGroupResponse{Group: g.Group.String(), Items: items}
	}
	if res.Subtotals == nil {
		res.Subtotals = []SubtotalResponse{}
	}
	return res, nil
}
