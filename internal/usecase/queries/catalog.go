package queries

import (
	"context"

	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCatalogItemNotFound = errs.New("catalog item not found")
	ErrUnknownGroup        = errs.New("unknown catalog group")
	ErrCatalogQueryFailed  = errs.New("catalog query failed")
)

// CatalogItemView is one selectable option of the booking form.
type CatalogItemView struct {
	ID        uuid.UUID         `json:"id"`
	Group     pricing.GroupName `json:"group"`
	Name      string            `json:"name"`
	DailyRate *float64          `json:"daily_rate,omitempty"`
	Label     *string           `json:"label,omitempty"`
	Active    bool              `json:"active"`
}

type CatalogReadStore interface {
	ListByGroup(ctx context.Context, group pricing.GroupName) ([]*CatalogItemView, error)
	FindByIDs(ctx context.Context, group pricing.GroupName, ids []uuid.UUID) ([]*CatalogItemView, error)
}

type CatalogQueries interface {
	List(ctx context.Context, group string) ([]*CatalogItemView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
	rates     RateResolver
}

func NewCatalogQueries(readStore CatalogReadStore, rates RateResolver) CatalogQueries {
	return &catalogQueriesImpl{
		readStore: readStore,
		rates:     rates,
	}
}

// List fills in rates that only exist in the option label, so the form can
// attach them to its options without parsing text itself.
func (q *catalogQueriesImpl) List(ctx context.Context, group string) ([]*CatalogItemView, error) {
	g, err := pricing.ParseGroupName(group)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownGroup)
	}

	items, err := q.readStore.ListByGroup(ctx, g)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list catalog items"), ErrCatalogQueryFailed)
	}

	out := make([]*CatalogItemView, len(items))
	for i, it := range items {
		view := *it
		view.DailyRate = q.rates.Resolve(it.DailyRate, it.Label)
		out[i] = &view
	}
	return out, nil
}
