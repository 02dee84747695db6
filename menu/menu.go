// Package menu holds the static in-room dining catalog and read-only
// lookups over it. The catalog is immutable after process start and is
// safe for concurrent reads from any number of call sessions.
package menu

import (
	"fmt"
	"strings"
)

// Item is a single dish on the menu.
type Item struct {
	Name        string
	Description string
	Price       float64
	Category    string // display name of the owning category
}

// Category groups items under a display name.
type Category struct {
	Key   string
	Name  string
	Items []Item
}

// Catalog is the full menu in definition order.
type Catalog struct {
	categories []Category
}

// NewCatalog returns the built-in in-room dining catalog.
func NewCatalog() *Catalog {
	return &Catalog{categories: defaultCategories()}
}

// Categories returns the catalog categories in definition order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Search matches the query case-insensitively against item names and
// descriptions across all categories. Results preserve catalog order.
// An empty or unmatched query yields an empty slice, never an error.
func (c *Catalog) Search(query string) []Item {
	results := []Item{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}
	for _, cat := range c.categories {
		for _, item := range cat.Items {
			if strings.Contains(strings.ToLower(item.Name), q) ||
				strings.Contains(strings.ToLower(item.Description), q) {
				results = append(results, item)
			}
		}
	}
	return results
}

// categoryKeywords maps human phrases to catalog category keys.
var categoryKeywords = map[string]string{
	"share":       "to_share",
	"starter":     "to_share",
	"appetizer":   "to_share",
	"soup":        "soups_salads",
	"salad":       "soups_salads",
	"enhancement": "enhancements",
	"extra":       "enhancements",
	"sandwich":    "sandwiches",
	"burger":      "sandwiches",
	"wrap":        "sandwiches",
	"entree":      "entrees",
	"main":        "entrees",
	"side":        "sides",
	"pasta":       "pasta",
	"dessert":     "dessert",
	"sweet":       "dessert",
}

// ItemsOfCategory resolves a human phrase (e.g. "salad") to a category
// via the fixed keyword map and returns its items. Unresolved phrases
// yield an empty slice.
func (c *Catalog) ItemsOfCategory(phrase string) []Item {
	p := strings.ToLower(strings.TrimSpace(phrase))
	key := ""
	for kw, k := range categoryKeywords {
		if strings.Contains(p, kw) {
			key = k
			break
		}
	}
	if key == "" {
		// Fall back to a direct match against category names and keys.
		for _, cat := range c.categories {
			if strings.Contains(strings.ToLower(cat.Name), p) || strings.Contains(cat.Key, p) {
				key = cat.Key
				break
			}
		}
	}
	if key == "" {
		return []Item{}
	}
	for _, cat := range c.categories {
		if cat.Key == key {
			return append([]Item{}, cat.Items...)
		}
	}
	return []Item{}
}

// Summary lists the category names with item counts, for quick menu
// overviews in responses.
func (c *Catalog) Summary() string {
	var b strings.Builder
	b.WriteString("Our menu includes the following categories:\n")
	for _, cat := range c.categories {
		fmt.Fprintf(&b, "- %s (%d items)\n", cat.Name, len(cat.Items))
	}
	return b.String()
}

// DetailedText renders the full menu for the responder context.
func (c *Catalog) DetailedText() string {
	var b strings.Builder
	b.WriteString("MENU ITEMS:\n\n")
	for _, cat := range c.categories {
		b.WriteString(cat.Name)
		b.WriteString(":\n")
		for _, item := range cat.Items {
			fmt.Fprintf(&b, "  - %s: $%.2f", item.Name, item.Price)
			if item.Description != "" {
				b.WriteString(" - ")
				b.WriteString(item.Description)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
