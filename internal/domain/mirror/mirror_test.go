package mirror

import (
	"errors"
	"testing"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenNormalizeRoundTrip(t *testing.T) {
	closed := entities.Order{
		ID: "1", Number: "A-1", Date: "2026-01-21", Status: entities.OrderStatusClosed,
		Operations: []entities.Operation{
			{Kind: entities.OperationTime, Detail: "assembly", Duration: 1.5, Quantity: 2},
			{Kind: entities.OperationLinearCut, Detail: "edge", Length: 3, Quantity: 1},
		},
	}
	p := pricing.PriceOfOrder(closed)
	closed.Price = &p
	open := entities.Order{
		ID: "2", Number: "A-2", Date: "2026-01-21", Status: entities.OrderStatusOpen,
		Operations: []entities.Operation{{Kind: entities.OperationCutArea, Detail: "top", Area: 1.2, Quantity: 1}},
	}

	records := Flatten([]entities.Order{closed, open})
	require.Len(t, records, 3)
	assert.Equal(t, "A-1", records[0].OrderNumber)
	assert.Equal(t, "TIME", records[0].Operation)
	assert.True(t, records[0].Price.Equal(decimal.NewFromInt(990)))
	assert.True(t, records[1].OrderTotal.Equal(decimal.NewFromInt(1068)))
	assert.Equal(t, "open", records[2].Status)

	back, err := Normalize(records)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, closed.Number, back[0].Number)
	assert.Equal(t, closed.Operations, back[0].Operations)
	require.NotNil(t, back[0].Price)
	assert.True(t, back[0].Price.Equal(p))
	assert.Equal(t, entities.OrderStatusOpen, back[1].Status)
	assert.Nil(t, back[1].Price)
	assert.Equal(t, open.Operations, back[1].Operations)
}

func TestNormalizeRejectsWholeBatch(t *testing.T) {
	good := entities.SinkRecord{OrderNumber: "A-1", Date: "2026-01-21", Operation: "GROOVING", Length: 1}
	cases := map[string]entities.SinkRecord{
		"empty number":   {Date: "2026-01-21", Operation: "GROOVING"},
		"bad date":       {OrderNumber: "A-2", Date: "21.01.2026", Operation: "GROOVING"},
		"bad operation":  {OrderNumber: "A-2", Date: "2026-01-21", Operation: "WELDING"},
		"unknown status": {OrderNumber: "A-2", Date: "2026-01-21", Operation: "GROOVING", Status: "archived"},
	}
	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := Normalize([]entities.SinkRecord{good, bad})
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, ErrMalformedRecord))
			var recErr *RecordError
			require.True(t, errors.As(err, &recErr))
			assert.Equal(t, 1, recErr.Index)
		})
	}
}

func TestNormalizeFrozenPriceFallback(t *testing.T) {
	out, err := Normalize([]entities.SinkRecord{
		{OrderNumber: "R-1", Date: "2026-01-10", Operation: "Grooving", Length: 2, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsClosed())
	assert.True(t, out[0].Price.Equal(decimal.NewFromInt(60)))
}

func TestMerge(t *testing.T) {
	local := []entities.Order{
		{ID: "l1", Number: "A-1", Date: "2026-01-21"},
		{ID: "l2", Number: "A-2", Date: "2026-01-21"},
	}
	remote := []entities.Order{
		{ID: "r1", Number: "A-2", Date: "2026-01-01"},
		{ID: "r2", Number: "C-9", Date: "2026-01-05"},
	}

	merged, added := Merge(local, remote)
	require.Len(t, merged, 3)
	assert.Equal(t, "l1", merged[0].ID)
	assert.Equal(t, "l2", merged[1].ID)
	assert.Equal(t, "2026-01-21", merged[1].Date, "local wins")
	assert.Equal(t, "r2", merged[2].ID)
	require.Len(t, added, 1)
	assert.Equal(t, "C-9", added[0].Number)

	merged, added = Merge(local, nil)
	assert.Len(t, merged, 2)
	assert.Empty(t, added)
}
