//go:build unit || e2e

package builder

import (
	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogItemBuilder struct {
	ID        uuid.UUID
	Group     pricing.GroupName
	Name      string
	DailyRate *float64
	Label     *string
	Active    bool
}

func NewCatalogItemBuilder() *CatalogItemBuilder {
	rate := 1500.0
	label := "Sony FX3 (฿1,500/วัน)"
	return &CatalogItemBuilder{
		ID:        uuid.New(),
		Group:     pricing.GroupEquipment,
		Name:      "Sony FX3",
		DailyRate: &rate,
		Label:     &label,
		Active:    true,
	}
}

func (b *CatalogItemBuilder) WithID(id uuid.UUID) *CatalogItemBuilder {
	b.ID = id
	return b
}

func (b *CatalogItemBuilder) WithGroup(g pricing.GroupName) *CatalogItemBuilder {
	b.Group = g
	return b
}

func (b *CatalogItemBuilder) WithName(name string) *CatalogItemBuilder {
	b.Name = name
	return b
}

func (b *CatalogItemBuilder) WithRate(rate float64) *CatalogItemBuilder {
	b.DailyRate = &rate
	return b
}

func (b *CatalogItemBuilder) WithoutRate() *CatalogItemBuilder {
	b.DailyRate = nil
	return b
}

func (b *CatalogItemBuilder) WithLabel(label string) *CatalogItemBuilder {
	b.Label = &label
	return b
}

func (b *CatalogItemBuilder) WithoutLabel() *CatalogItemBuilder {
	b.Label = nil
	return b
}

func (b *CatalogItemBuilder) Inactive() *CatalogItemBuilder {
	b.Active = false
	return b
}

func (b *CatalogItemBuilder) BuildView() *queries.CatalogItemView {
	return &queries.CatalogItemView{
		ID:        b.ID,
		Group:     b.Group,
		Name:      b.Name,
		DailyRate: b.DailyRate,
		Label:     b.Label,
		Active:    b.Active,
	}
}
