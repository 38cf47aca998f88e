//go:build unit || e2e

package builder

import (
	"time"

	reqdto "rental-pricing/internal/handler/dto/request"
	"rental-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteRequestBuilder struct {
	req reqdto.QuoteRequest
}

func NewQuoteRequestBuilder() *QuoteRequestBuilder {
	return &QuoteRequestBuilder{req: reqdto.QuoteRequest{
		StartDate:  "01/01/2024",
		StartClock: "10",
		EndDate:    "01/01/2024",
		EndClock:   "18:00",
	}}
}

func (b *QuoteRequestBuilder) Between(start, end time.Time) *QuoteRequestBuilder {
	b.req.StartTime = &start
	b.req.EndTime = &end
	b.req.StartDate, b.req.StartClock, b.req.EndDate, b.req.EndClock = "", "", "", ""
	return b
}

func (b *QuoteRequestBuilder) WithEquipment(ids ...uuid.UUID) *QuoteRequestBuilder {
	b.req.Equipment = append(b.req.Equipment, ids...)
	return b
}

func (b *QuoteRequestBuilder) WithStudios(ids ...uuid.UUID) *QuoteRequestBuilder {
	b.req.Studios = append(b.req.Studios, ids...)
	return b
}

func (b *QuoteRequestBuilder) WithStaff(ids ...uuid.UUID) *QuoteRequestBuilder {
	b.req.Staff = append(b.req.Staff, ids...)
	return b
}

func (b *QuoteRequestBuilder) WithItem(item reqdto.QuoteItemRequest) *QuoteRequestBuilder {
	b.req.Items = append(b.req.Items, item)
	return b
}

func (b *QuoteRequestBuilder) Build() reqdto.QuoteRequest {
	return b.req
}

// QuoteViewFixture is a priced one-day quote for a single camera.
func QuoteViewFixture() *queries.QuoteView {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	id := uuid.New()
	rate := 1500.0
	return &queries.QuoteView{
		Start: &start,
		End:   &end,
		Days:  1,
		Valid: true,
		Subtotals: []queries.SubtotalView{
			{Group: "equipment", Amount: 1500, Display: "฿1,500.00"},
		},
		Total:            1500,
		TotalDisplay:     "฿1,500.00",
		DailyRate:        1500,
		DailyRateDisplay: "฿1,500.00",
		Selected: []queries.SelectedGroupView{
			{Group: "equipment", Items: []queries.SelectedItemView{{ID: &id, Name: "Sony FX3", Rate: &rate, Quantity: 1}}},
		},
	}
}
