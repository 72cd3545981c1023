package extract

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"marketboard/internal/market"
)

// Default selectors matching the current kifpool.me/markets markup
const (
	DefaultRowSelector   = "a.h-16.border-b"
	DefaultNameSelector  = "p.text-sm"
	DefaultPriceSelector = "p.text-base"
)

// ParseError is returned when the page cannot be turned into a document
type ParseError struct {
	Cause error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Cause)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Parse turns raw HTML text into a queryable document
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ParseError{Cause: err}
	}
	return doc, nil
}

// RowLocator finds price rows in a document and reads the name and price of each.
// It is the only place that knows the remote page's markup.
type RowLocator interface {
	// Rows returns the candidate rows in document order
	Rows(doc *goquery.Document) *goquery.Selection

	// Name returns the name element within a row, if present
	Name(row *goquery.Selection) (*goquery.Selection, bool)

	// Price returns the price element within a row, if present
	Price(row *goquery.Selection) (*goquery.Selection, bool)
}

// SelectorLocator is a RowLocator driven by CSS selectors
type SelectorLocator struct {
	RowSelector   string
	NameSelector  string
	PriceSelector string
}

// DefaultLocator returns the locator for the current listing page markup
func DefaultLocator() SelectorLocator {
	return SelectorLocator{
		RowSelector:   DefaultRowSelector,
		NameSelector:  DefaultNameSelector,
		PriceSelector: DefaultPriceSelector,
	}
}

// Rows implements RowLocator
func (l SelectorLocator) Rows(doc *goquery.Document) *goquery.Selection {
	return doc.Find(l.RowSelector)
}

// Name implements RowLocator
func (l SelectorLocator) Name(row *goquery.Selection) (*goquery.Selection, bool) {
	return first(row, l.NameSelector)
}

// Price implements RowLocator
func (l SelectorLocator) Price(row *goquery.Selection) (*goquery.Selection, bool) {
	return first(row, l.PriceSelector)
}

func first(row *goquery.Selection, selector string) (*goquery.Selection, bool) {
	sel := row.Find(selector).First()
	return sel, sel.Length() > 0
}

// Extract reads a (name, price) pair from every row the locator finds.
// Rows missing either element are skipped.
func Extract(doc *goquery.Document, locator RowLocator) []market.PriceEntry {
	entries := []market.PriceEntry{}

	locator.Rows(doc).Each(func(i int, row *goquery.Selection) {
		name, ok := locator.Name(row)
		if !ok {
			return
		}
		price, ok := locator.Price(row)
		if !ok {
			return
		}

		entries = append(entries, market.PriceEntry{
			Name:  trim(name.Text()),
			Price: trim(price.Text()),
		})
	})

	return entries
}

// trim strips surrounding whitespace, including a stray byte order mark
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
