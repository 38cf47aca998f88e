package sqlstore

import (
	"context"

	"rental-pricing/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogItemRow struct {
	ID        uuid.UUID
	ItemGroup string
	Name      string
	DailyRate pgtype.Numeric
	Label     pgtype.Text
	IsActive  bool
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const listCatalogItemsByGroup = `
SELECT id, item_group, name, daily_rate, label, is_active
FROM catalog_items
WHERE item_group = $1 AND is_active = TRUE
ORDER BY sort_order, name
`

func (q *Queries) ListCatalogItemsByGroup(ctx context.Context, dbtx db.DBTX, group string) ([]CatalogItemRow, error) {
	rows, err := dbtx.Query(ctx, listCatalogItemsByGroup, group)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCatalogItemRow)
}

// Inactive items are still returned so that existing selections keep pricing.
const getCatalogItemsByIDs = `
SELECT id, item_group, name, daily_rate, label, is_active
FROM catalog_items
WHERE item_group = $1 AND id = ANY($2::uuid[])
`

func (q *Queries) GetCatalogItemsByIDs(ctx context.Context, dbtx db.DBTX, group string, ids []uuid.UUID) ([]CatalogItemRow, error) {
	idParams := make([]string, len(ids))
	for i, id := range ids {
		idParams[i] = id.String()
	}
	rows, err := dbtx.Query(ctx, getCatalogItemsByIDs, group, idParams)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCatalogItemRow)
}

func scanCatalogItemRow(row pgx.CollectableRow) (CatalogItemRow, error) {
	var i CatalogItemRow
	err := row.Scan(
		&i.ID,
		&i.ItemGroup,
		&i.Name,
		&i.DailyRate,
		&i.Label,
		&i.IsActive,
	)
	return i, err
}
