package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCaseInsensitive(t *testing.T) {
	c := NewCatalog()

	upper := c.Search("TRUFFLE FRIES")
	lower := c.Search("truffle fries")
	require.NotEmpty(t, upper)
	assert.Equal(t, lower, upper)

	// Catalog order preserved: the To Share listing comes before Sides.
	assert.Equal(t, "Truffle Fries", upper[0].Name)
	assert.Equal(t, "To Share", upper[0].Category)
	assert.InDelta(t, 17.0, upper[0].Price, 0.001)
}

func TestSearchMatchesDescriptions(t *testing.T) {
	c := NewCatalog()

	results := c.Search("parmesan")
	require.NotEmpty(t, results)
	for _, item := range results {
		assert.NotEmpty(t, item.Category)
	}
}

func TestSearchEmptyAndUnmatched(t *testing.T) {
	c := NewCatalog()

	assert.NotNil(t, c.Search(""))
	assert.Empty(t, c.Search(""))
	assert.NotNil(t, c.Search("pizza margherita"))
	assert.Empty(t, c.Search("pizza margherita"))
}

func TestItemsOfCategory(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		phrase string
		want   string // expected category of every result; empty means no results
	}{
		{"salad", "Soups and Salads"},
		{"what salads do you have", "Soups and Salads"},
		{"burger", "Sandwiches"},
		{"dessert", "Dessert"},
		{"pasta", "Pasta"},
		{"spacecraft", ""},
	}
	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			items := c.ItemsOfCategory(tt.phrase)
			if tt.want == "" {
				assert.Empty(t, items)
				return
			}
			require.NotEmpty(t, items)
			for _, item := range items {
				assert.Equal(t, tt.want, item.Category)
			}
		})
	}
}

func TestDetailedTextAndSummary(t *testing.T) {
	c := NewCatalog()

	text := c.DetailedText()
	assert.Contains(t, text, "MENU ITEMS:")
	assert.Contains(t, text, "Truffle Fries: $17.00")
	assert.Contains(t, text, "Entrées:")

	summary := c.Summary()
	assert.Contains(t, summary, "To Share (7 items)")
}
