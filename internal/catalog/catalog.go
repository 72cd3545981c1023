package catalog

import "fmt"

// Category is one of the fixed asset groupings shown on the board
type Category string

const (
	// Gold covers coins and per-gram gold prices
	Gold Category = "gold"
	// Currency covers fiat exchange rates
	Currency Category = "currency"
	// Crypto covers cryptocurrency prices
	Crypto Category = "crypto"
)

// Priority is the order in which categories are tested during lookup.
// A name listed under more than one category is assigned to the first one here.
var Priority = []Category{Gold, Currency, Crypto}

// Catalog maps each category to the ordered display names it recognizes.
// A Catalog is immutable once built.
type Catalog struct {
	names map[Category][]string
	index map[Category]map[string]struct{}
}

// New builds a catalog from per-category name lists.
// Categories outside Priority are rejected.
func New(names map[Category][]string) (*Catalog, error) {
	c := &Catalog{
		names: make(map[Category][]string, len(Priority)),
		index: make(map[Category]map[string]struct{}, len(Priority)),
	}

	for category, list := range names {
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category %q", category)
		}

		set := make(map[string]struct{}, len(list))
		ordered := make([]string, 0, len(list))
		for _, name := range list {
			if _, dup := set[name]; dup {
				continue
			}
			set[name] = struct{}{}
			ordered = append(ordered, name)
		}

		c.names[category] = ordered
		c.index[category] = set
	}

	return c, nil
}

// Default returns the catalog of names tracked on kifpool.me/markets
func Default() *Catalog {
	c, _ := New(map[Category][]string{
		Gold:     {"سکه امامی", "سکه بهار آزادی", "نیم سکه", "ربع سکه", "هر گرم طلای ۱۸ عیار"},
		Currency: {"دلار", "یورو", "درهم امارات"},
		Crypto:   {"بیت‌کوین", "اتریوم", "تتر", "شیبا", "دوج‌کوین"},
	})
	return c
}

// Valid reports whether the category is one of the fixed groupings
func (c Category) Valid() bool {
	for _, p := range Priority {
		if c == p {
			return true
		}
	}
	return false
}

// Lookup returns the category a display name belongs to.
// Matching is exact string equality, tested in Priority order.
func (c *Catalog) Lookup(name string) (Category, bool) {
	for _, category := range Priority {
		if _, ok := c.index[category][name]; ok {
			return category, true
		}
	}
	return "", false
}

// Names returns a copy of the names recognized for a category
func (c *Catalog) Names(category Category) []string {
	names := c.names[category]
	out := make([]string, len(names))
	copy(out, names)
	return out
}
