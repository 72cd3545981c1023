package render

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"marketboard/internal/catalog"
	"marketboard/internal/market"
)

func TestRender_PopulatesPanelsInOrder(t *testing.T) {
	page := NewPage()
	results := market.Results{
		catalog.Gold: {
			{Name: "سکه امامی", Price: "42,000,000"},
			{Name: "نیم سکه", Price: "22,000,000"},
			{Name: "ربع سکه", Price: "13,000,000"},
		},
		catalog.Currency: {
			{Name: "دلار", Price: "58000"},
		},
		catalog.Crypto: {},
	}

	Render(page.Board(), results)

	wantGold := []Item{
		{Name: "سکه امامی", Price: "42,000,000", Delay: 0},
		{Name: "نیم سکه", Price: "22,000,000", Delay: 100 * time.Millisecond},
		{Name: "ربع سکه", Price: "13,000,000", Delay: 200 * time.Millisecond},
	}
	if diff := cmp.Diff(wantGold, page.Gold.Items()); diff != "" {
		t.Errorf("gold panel mismatch (-want +got):\n%s", diff)
	}

	wantCurrency := []Item{{Name: "دلار", Price: "58000", Delay: 0}}
	if diff := cmp.Diff(wantCurrency, page.Currency.Items()); diff != "" {
		t.Errorf("currency panel mismatch (-want +got):\n%s", diff)
	}

	if len(page.Crypto.Items()) != 0 {
		t.Errorf("crypto panel = %v, want empty", page.Crypto.Items())
	}
}

func TestRender_DelayStrictlyIncreases(t *testing.T) {
	page := NewPage()
	bucket := make([]market.PriceEntry, 10)
	for i := range bucket {
		bucket[i] = market.PriceEntry{Name: "تتر", Price: "59,100"}
	}

	Render(page.Board(), market.Results{catalog.Crypto: bucket})

	items := page.Crypto.Items()
	if len(items) != len(bucket) {
		t.Fatalf("crypto panel has %d items, want %d", len(items), len(bucket))
	}
	for i := 1; i < len(items); i++ {
		if step := items[i].Delay - items[i-1].Delay; step != DelayStep {
			t.Errorf("delay step at index %d = %v, want %v", i, step, DelayStep)
		}
	}
}

func TestRender_ClearsPreviousContent(t *testing.T) {
	page := NewPage()
	page.Gold.SetNotice(ErrorMessage)
	page.Currency.Append(Item{Name: "stale", Price: "0"})
	page.Crypto.Append(Item{Name: "stale", Price: "0"})

	Render(page.Board(), market.NewResults())

	for _, panel := range []*Panel{page.Gold, page.Currency, page.Crypto} {
		if len(panel.Items()) != 0 {
			t.Errorf("panel %s items = %v, want empty", panel.ID(), panel.Items())
		}
		if panel.Notice() != "" {
			t.Errorf("panel %s notice = %q, want empty", panel.ID(), panel.Notice())
		}
	}
}

func TestRenderError(t *testing.T) {
	page := NewPage()
	Render(page.Board(), market.Results{
		catalog.Gold:     {{Name: "سکه امامی", Price: "1"}},
		catalog.Currency: {{Name: "دلار", Price: "2"}},
		catalog.Crypto:   {{Name: "تتر", Price: "3"}},
	})

	RenderError(page.Board())

	if page.Gold.Notice() != ErrorMessage {
		t.Errorf("gold notice = %q, want %q", page.Gold.Notice(), ErrorMessage)
	}
	if len(page.Gold.Items()) != 0 {
		t.Errorf("gold items = %v, want empty", page.Gold.Items())
	}
	for _, panel := range []*Panel{page.Currency, page.Crypto} {
		if len(panel.Items()) != 0 || panel.Notice() != "" {
			t.Errorf("panel %s not empty: items=%v notice=%q", panel.ID(), panel.Items(), panel.Notice())
		}
	}
}

func TestBoard_PanelUnknownCategoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Panel() expected panic for unknown category")
		}
	}()
	NewPage().Board().Panel("stocks")
}

func TestPage_Sections(t *testing.T) {
	page := NewPage()
	Render(page.Board(), market.Results{
		catalog.Currency: {
			{Name: "دلار", Price: "58000"},
			{Name: "یورو", Price: "63000"},
		},
	})

	sections := page.Sections()

	want := []Section{
		{ID: GoldSectionID, Category: catalog.Gold, Title: "طلا و سکه", Items: []SectionItem{}},
		{ID: CurrencySectionID, Category: catalog.Currency, Title: "ارز", Items: []SectionItem{
			{Name: "دلار", Price: "58000", AnimationDelay: "0s"},
			{Name: "یورو", Price: "63000", AnimationDelay: "0.1s"},
		}},
		{ID: CryptoSectionID, Category: catalog.Crypto, Title: "ارز دیجیتال", Items: []SectionItem{}},
	}

	if diff := cmp.Diff(want, sections); diff != "" {
		t.Errorf("Sections() mismatch (-want +got):\n%s", diff)
	}
}
