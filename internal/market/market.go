package market

import "marketboard/internal/catalog"

// PriceEntry is one (name, price) pair read from a row of the listing page.
// Both fields are whitespace-trimmed text as shown on the page.
type PriceEntry struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Results holds the classified entries of a single run, one bucket per category.
// Bucket order is the order the entries appeared in the source document.
type Results map[catalog.Category][]PriceEntry

// NewResults returns Results with an empty bucket for every category
func NewResults() Results {
	r := make(Results, len(catalog.Priority))
	for _, category := range catalog.Priority {
		r[category] = []PriceEntry{}
	}
	return r
}

// Classify partitions entries into category buckets using exact name lookup.
// Entries whose name is not in the catalog are dropped.
func Classify(entries []PriceEntry, c *catalog.Catalog) Results {
	results := NewResults()
	for _, entry := range entries {
		category, ok := c.Lookup(entry.Name)
		if !ok {
			continue
		}
		results[category] = append(results[category], entry)
	}
	return results
}

// Len returns the total number of classified entries
func (r Results) Len() int {
	n := 0
	for _, bucket := range r {
		n += len(bucket)
	}
	return n
}
