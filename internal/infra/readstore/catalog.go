package readstore

import (
	"context"

	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/infra"
	"rental-pricing/internal/infra/db"
	"rental-pricing/internal/infra/sqlstore"
	"rental-pricing/internal/pkg/pgconv"
	"rental-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogItemQueries interface {
	ListCatalogItemsByGroup(ctx context.Context, dbtx db.DBTX, group string) ([]sqlstore.CatalogItemRow, error)
	GetCatalogItemsByIDs(ctx context.Context, dbtx db.DBTX, group string, ids []uuid.UUID) ([]sqlstore.CatalogItemRow, error)
}

type CatalogReadStore struct {
	queries CatalogItemQueries
	db      db.DBTX
}

func NewCatalogReadStore(queries CatalogItemQueries, db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) ListByGroup(ctx context.Context, group pricing.GroupName) ([]*queries.CatalogItemView, error) {
	rows, err := r.queries.ListCatalogItemsByGroup(ctx, r.db, group.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog items by group", err)
	}
	return mapCatalogRows(rows)
}

func (r *CatalogReadStore) FindByIDs(ctx context.Context, group pricing.GroupName, ids []uuid.UUID) ([]*queries.CatalogItemView, error) {
	if len(ids) == 0 {
		return []*queries.CatalogItemView{}, nil
	}

	rows, err := r.queries.GetCatalogItemsByIDs(ctx, r.db, group.String(), ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get catalog items by ids", err)
	}
	return mapCatalogRows(rows)
}

func mapCatalogRows(rows []sqlstore.CatalogItemRow) ([]*queries.CatalogItemView, error) {
	items := make([]*queries.CatalogItemView, len(rows))
	for i, row := range rows {
		rate, err := pgconv.Float64PtrFromNumeric(row.DailyRate)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode daily rate", err, infra.KindDecode)
		}
		items[i] = &queries.CatalogItemView{
			ID:        row.ID,
			Group:     pricing.GroupName(row.ItemGroup),
			Name:      row.Name,
			DailyRate: rate,
			Label:     pgconv.StringPtrFromPgtype(row.Label),
			Active:    row.IsActive,
		}
	}
	return items, nil
}
