//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"rental-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

type GroupBuilder struct {
	Name  pricing.GroupName
	Items []pricing.LineItem
}

func NewGroupBuilder(name pricing.GroupName) *GroupBuilder {
	return &GroupBuilder{Name: name}
}

func (b *GroupBuilder) WithRates(rates ...float64) *GroupBuilder {
	for i, r := range rates {
		rate := r
		b.Items = append(b.Items, pricing.NewLineItem(uuid.New(), fmt.Sprintf("%s item %d", b.Name, i+1), &rate))
	}
	return b
}

func (b *GroupBuilder) WithItem(item pricing.LineItem) *GroupBuilder {
	b.Items = append(b.Items, item)
	return b
}

func (b *GroupBuilder) Build() pricing.Group {
	return pricing.NewGroup(b.Name, b.Items...)
}

type SnapshotBuilder struct {
	Start  *time.Time
	End    *time.Time
	Groups []pricing.Group
}

func NewSnapshotBuilder() *SnapshotBuilder {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	return &SnapshotBuilder{Start: &start, End: &end}
}

func (b *SnapshotBuilder) Between(start, end *time.Time) *SnapshotBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *SnapshotBuilder) WithGroup(g pricing.Group) *SnapshotBuilder {
	b.Groups = append(b.Groups, g)
	return b
}

func (b *SnapshotBuilder) Build() pricing.Snapshot {
	return pricing.Snapshot{Start: b.Start, End: b.End, Groups: b.Groups}
}
