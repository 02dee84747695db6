package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendNeverMerges(t *testing.T) {
	var l Ledger
	l.Append("Truffle Fries", 17)
	l.Append("Truffle Fries", 17)
	l.Append("Truffle Fries", 17)

	require.Equal(t, 3, l.Len())
	for _, line := range l.Lines() {
		assert.Equal(t, 1, line.Quantity)
	}
}

func TestTotalBreakdown(t *testing.T) {
	var l Ledger
	l.Append("Truffle Fries", 17)

	tot := l.Total()
	assert.InDelta(t, 17.00, tot.Subtotal, 0.001)
	assert.InDelta(t, 3.40, tot.ServiceCharge, 0.001)
	assert.InDelta(t, 6.00, tot.DeliveryFee, 0.001)
	assert.InDelta(t, 26.40, tot.GrandTotal, 0.001)
}

func TestTotalIsIdempotent(t *testing.T) {
	var l Ledger
	l.Append("d|Burger", 38)
	l.Append("Classic Caesar", 24)

	first := l.Total()
	second := l.Total()
	assert.Equal(t, first, second)
}

func TestTotalRecomputedAfterMutation(t *testing.T) {
	var l Ledger
	l.Append("Steamed Edamame", 9)
	before := l.Total()

	l.Append("Banana Pudding", 18)
	after := l.Total()
	assert.InDelta(t, before.Subtotal+18, after.Subtotal, 0.001)
}

func TestClearEmptiesOrder(t *testing.T) {
	var l Ledger
	l.Append("Falafel", 23)
	require.False(t, l.IsEmpty())

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Zero(t, l.Total().Subtotal)
	assert.InDelta(t, DeliveryFee, l.Total().GrandTotal, 0.001)
}

func TestTextRendersTotals(t *testing.T) {
	var l Ledger
	assert.Equal(t, "No items in current order.", l.Text())

	l.Append("Truffle Fries", 17)
	text := l.Text()
	assert.Contains(t, text, "Truffle Fries - $17.00")
	assert.Contains(t, text, "Service charge (20%): $3.40")
	assert.Contains(t, text, "Total: $26.40")
}
