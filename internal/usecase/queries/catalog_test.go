//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/pkg/clock"
	"rental-pricing/internal/pkg/ptr"
	"rental-pricing/internal/pkg/ratetext"
	"rental-pricing/internal/usecase/queries"
	"rental-pricing/tests/common/builder"
	queriesmock "rental-pricing/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogQueries_List(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		group       string
		setupMock   func(*queriesmock.MockCatalogReadStore)
		expectErr   error
		expectRates []*float64
	}{
		{
			name:  "success: label rate fills a missing daily rate",
			group: "equipment",
			setupMock: func(m *queriesmock.MockCatalogReadStore) {
				m.EXPECT().ListByGroup(ctx, pricing.GroupEquipment).Return([]*queries.CatalogItemView{
					builder.NewCatalogItemBuilder().WithRate(500).BuildView(),
					builder.NewCatalogItemBuilder().WithoutRate().WithLabel("Lens kit (฿2,500/วัน)").BuildView(),
					builder.NewCatalogItemBuilder().WithoutRate().WithoutLabel().BuildView(),
				}, nil)
			},
			expectRates: []*float64{ptr.To(500.0), ptr.To(2500.0), nil},
		},
		{
			name:  "success: empty group",
			group: "staff",
			setupMock: func(m *queriesmock.MockCatalogReadStore) {
				m.EXPECT().ListByGroup(ctx, pricing.GroupStaff).Return([]*queries.CatalogItemView{}, nil)
			},
			expectRates: []*float64{},
		},
		{
			name:      "error: unknown group",
			group:     "props",
			setupMock: func(m *queriesmock.MockCatalogReadStore) {},
			expectErr: queries.ErrUnknownGroup,
		},
		{
			name:  "error: store failure",
			group: "studios",
			setupMock: func(m *queriesmock.MockCatalogReadStore) {
				m.EXPECT().ListByGroup(ctx, pricing.GroupStudios).Return(nil, errors.New("timeout"))
			},
			expectErr: queries.ErrCatalogQueryFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockCatalogReadStore(ctrl)
			tc.setupMock(store)

			q := queries.NewCatalogQueries(store, queries.NewRateResolver(ratetext.NewParser()))
			items, err := q.List(ctx, tc.group)

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				assert.Nil(t, items)
				return
			}
			require.NoError(t, err)
			require.Len(t, items, len(tc.expectRates))
			for i, want := range tc.expectRates {
				assert.Equal(t, want, items[i].DailyRate)
			}
		})
	}
}

func TestCatalogQueries_ListDoesNotMutateStoreViews(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCatalogReadStore(ctrl)

	original := builder.NewCatalogItemBuilder().WithoutRate().WithLabel("Dolly (฿900/วัน)").BuildView()
	store.EXPECT().ListByGroup(ctx, pricing.GroupEquipment).Return([]*queries.CatalogItemView{original}, nil)

	q := queries.NewCatalogQueries(store, queries.NewRateResolver(nil))
	items, err := q.List(ctx, "equipment")

	require.NoError(t, err)
	assert.Equal(t, 900.0, *items[0].DailyRate)
	assert.Nil(t, original.DailyRate)
}

func TestFormQueries_Now(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	clk := clock.NewFixedClock(time.Date(2024, 3, 9, 20, 5, 7, 0, time.UTC))

	view := queries.NewFormQueries(clk, bangkok).Now(context.Background())

	assert.Equal(t, "10/03/2024", view.Date)
	assert.Equal(t, "03:05:07", view.Time)
	assert.Equal(t, "ICT", view.TimeZone)
}
