package response

import (
	"rental-pricing/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CatalogItemResponse struct {
	ID        string   `json:"id"`
	Group     string   `json:"group"`
	Name      string   `json:"name"`
	DailyRate *float64 `json:"daily_rate"`
	Label     *string  `json:"label,omitempty"`
}

func FromCatalogItems(items []*queries.CatalogItemView) []*CatalogItemResponse {
	res := make([]*CatalogItemResponse, len(items))
	for i, it := range items {
		res[i] = &CatalogItemResponse{
			ID:        it.ID.String(),
			Group:     it.Group.String(),
			Name:      it.Name,
			DailyRate: it.DailyRate,
			Label:     it.Label,
		}
	}
	return res
}

type FormNowResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	TimeZone string `json:"timezone"`
}

func FromFormNowView(v queries.FormNowView) (*FormNowResponse, error) {
	res := &FormNowResponse{}
	if err := copier.Copy(res, &v); err != nil {
		return nil, err
	}
	return res, nil
}
