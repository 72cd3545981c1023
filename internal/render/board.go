package render

import (
	"fmt"

	"marketboard/internal/catalog"
)

// Stable identifiers of the three panels
const (
	GoldSectionID     = "gold-section"
	CurrencySectionID = "currency-section"
	CryptoSectionID   = "crypto-section"
)

// Board groups the destination panel of each category
type Board struct {
	panels map[catalog.Category]Container
}

// NewBoard creates a board from one container per category
func NewBoard(gold, currency, crypto Container) *Board {
	return &Board{
		panels: map[catalog.Category]Container{
			catalog.Gold:     gold,
			catalog.Currency: currency,
			catalog.Crypto:   crypto,
		},
	}
}

// Panel returns the container for a category
func (b *Board) Panel(category catalog.Category) Container {
	panel, ok := b.panels[category]
	if !ok {
		panic(fmt.Sprintf("render: no panel for category %q", category))
	}
	return panel
}

// Panel is an in-memory Container
type Panel struct {
	id     string
	items  []Item
	notice string
}

// NewPanel creates an empty panel
func NewPanel(id string) *Panel {
	return &Panel{id: id}
}

// ID implements Container
func (p *Panel) ID() string { return p.id }

// Clear implements Container
func (p *Panel) Clear() {
	p.items = nil
	p.notice = ""
}

// Append implements Container
func (p *Panel) Append(item Item) {
	p.items = append(p.items, item)
}

// SetNotice implements Container
func (p *Panel) SetNotice(text string) {
	p.items = nil
	p.notice = text
}

// Items returns the items currently shown
func (p *Panel) Items() []Item {
	return p.items
}

// Notice returns the notice text, empty when none is shown
func (p *Panel) Notice() string {
	return p.notice
}
