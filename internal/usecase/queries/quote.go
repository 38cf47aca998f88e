package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/pkg/errs"
	"rental-pricing/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteInput = errs.New("invalid quote input")
)

type AdHocItem struct {
	Group    string
	Name     string
	Rate     *float64
	Label    *string
	Quantity int
}

type QuoteParams struct {
	Start      *time.Time
	End        *time.Time
	Selections map[pricing.GroupName][]uuid.UUID
	AdHoc      []AdHocItem
}

type SubtotalView struct {
	Group   pricing.GroupName `json:"group"`
	Amount  float64           `json:"amount"`
	Display string            `json:"display"`
}

type SelectedItemView struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Name     string     `json:"name"`
	Rate     *float64   `json:"rate,omitempty"`
	Quantity int        `json:"quantity"`
}

type SelectedGroupView struct {
	Group pricing.GroupName  `json:"group"`
	Items []SelectedItemView `json:"items"`
}

type QuoteView struct {
	Start            *time.Time          `json:"start,omitempty"`
	End              *time.Time          `json:"end,omitempty"`
	Days             int                 `json:"days"`
	Valid            bool                `json:"valid"`
	NeedsInterval    bool                `json:"needs_interval"`
	IntervalError    *string             `json:"interval_error,omitempty"`
	Subtotals        []SubtotalView      `json:"subtotals"`
	Total            float64             `json:"total"`
	TotalDisplay     string              `json:"total_display"`
	DailyRate        float64             `json:"daily_rate"`
	DailyRateDisplay string              `json:"daily_rate_display"`
	LongRental       bool                `json:"long_rental"`
	Selected         []SelectedGroupView `json:"selected"`
}

type AmountFormatter interface {
	Format(amount float64) string
}

type QuoteQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	readStore  CatalogReadStore
	calculator pricing.Calculator
	rates      RateResolver
	formatter  AmountFormatter
}

func NewQuoteQueries(
	readStore CatalogReadStore,
	calculator pricing.Calculator,
	rates RateResolver,
	formatter AmountFormatter,
) QuoteQueries {
	return &quoteQueriesImpl{
		readStore:  readStore,
		calculator: calculator,
		rates:      rates,
		formatter:  formatter,
	}
}

// groupOrder is the order in which the form lists selections.
var groupOrder = []pricing.GroupName{pricing.GroupEquipment, pricing.GroupStudios, pricing.GroupStaff}

func (q *quoteQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	for g := range params.Selections {
		if !g.IsValid() {
			return nil, errs.Mark(errs.Wrapf(pricing.ErrUnknownGroup, "selection group %q", g), ErrUnknownGroup)
		}
	}

	byGroup := make(map[pricing.GroupName][]pricing.LineItem, len(groupOrder))
	for _, g := range groupOrder {
		ids := params.Selections[g]
		if len(ids) == 0 {
			continue
		}
		items, err := q.resolveSelections(ctx, g, ids)
		if err != nil {
			return nil, err
		}
		byGroup[g] = append(byGroup[g], items...)
	}

	for _, adhoc := range params.AdHoc {
		g, err := pricing.ParseGroupName(adhoc.Group)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "ad-hoc item group %q", adhoc.Group), ErrUnknownGroup)
		}
		if adhoc.Quantity < 0 {
			return nil, errs.Mark(errs.Newf("negative quantity %d for %q", adhoc.Quantity, adhoc.Name), ErrInvalidQuoteInput)
		}
		name := strings.TrimSpace(adhoc.Name)
		if name == "" {
			name = strings.TrimSpace(ptr.ValueOr(adhoc.Label, ""))
		}
		byGroup[g] = append(byGroup[g], pricing.LineItem{
			Name:     name,
			Rate:     q.rates.Resolve(adhoc.Rate, adhoc.Label),
			Quantity: adhoc.Quantity,
		})
	}

	snapshot := pricing.Snapshot{Start: params.Start, End: params.End}
	for _, g := range groupOrder {
		if items, ok := byGroup[g]; ok {
			snapshot.Groups = append(snapshot.Groups, pricing.NewGroup(g, items...))
		}
	}

	result := q.calculator.Quote(snapshot)
	view := q.buildView(snapshot, result)

	slog.DebugContext(ctx, "quote computed",
		slog.Int("days", view.Days),
		slog.Float64("total", view.Total),
		slog.Int("groups", len(snapshot.Groups)),
	)
	return view, nil
}

func (q *quoteQueriesImpl) resolveSelections(ctx context.Context, g pricing.GroupName, ids []uuid.UUID) ([]pricing.LineItem, error) {
	unique := dedupeIDs(ids)

	found, err := q.readStore.FindByIDs(ctx, g, unique)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "find %s items", g), ErrCatalogQueryFailed)
	}

	byID := make(map[uuid.UUID]*CatalogItemView, len(found))
	for _, it := range found {
		byID[it.ID] = it
	}

	items := make([]pricing.LineItem, 0, len(unique))
	for _, id := range unique {
		it, ok := byID[id]
		if !ok {
			return nil, errs.Mark(errs.Newf("%s item %s not found", g, id), ErrCatalogItemNotFound)
		}
		items = append(items, pricing.NewLineItem(it.ID, it.Name, q.rates.Resolve(it.DailyRate, it.Label)))
	}
	return items, nil
}

func (q *quoteQueriesImpl) buildView(snapshot pricing.Snapshot, result pricing.Result) *QuoteView {
	view := &QuoteView{
		Start:      snapshot.Start,
		End:        snapshot.End,
		Days:       result.Days,
		Valid:      result.Valid(),
		Subtotals:  []SubtotalView{},
		Total:      result.Total,
		LongRental: result.LongRental(),
		Selected:   []SelectedGroupView{},
	}

	if err := snapshot.Interval().Validate(); err != nil {
		msg := err.Error()
		view.IntervalError = &msg
	} else if !result.Valid() {
		view.NeedsInterval = true
	}

	for _, name := range pricing.PricedGroups {
		amount := result.Subtotal(name)
		if amount == 0 {
			continue
		}
		view.Subtotals = append(view.Subtotals, SubtotalView{
			Group:   name,
			Amount:  amount,
			Display: q.formatter.Format(amount),
		})
	}
	view.TotalDisplay = q.formatter.Format(result.Total)

	for _, g := range snapshot.Groups {
		if g.Name.IsPriced() {
			view.DailyRate += g.DailyRate()
		}
		selected := SelectedGroupView{Group: g.Name, Items: make([]SelectedItemView, len(g.Items))}
		for i, it := range g.Items {
			var id *uuid.UUID
			if it.ID != uuid.Nil {
				id = ptr.To(it.ID)
			}
			selected.Items[i] = SelectedItemView{ID: id, Name: it.Name, Rate: it.Rate, Quantity: it.Units()}
		}
		view.Selected = append(view.Selected, selected)
	}
	view.DailyRateDisplay = q.formatter.Format(view.DailyRate)

	return view
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// IsClientError reports whether err was caused by the request rather than the service.
func IsClientError(err error) bool {
	return errors.Is(err, ErrCatalogItemNotFound) ||
		errors.Is(err, ErrUnknownGroup) ||
		errors.Is(err, ErrInvalidQuoteInput)
}
