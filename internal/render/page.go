package render

import (
	"strconv"
	"time"

	"marketboard/internal/catalog"
)

// Page is a board backed by in-memory panels that can be written out
type Page struct {
	Gold     *Panel
	Currency *Panel
	Crypto   *Panel
}

// NewPage creates a page with three empty panels
func NewPage() *Page {
	return &Page{
		Gold:     NewPanel(GoldSectionID),
		Currency: NewPanel(CurrencySectionID),
		Crypto:   NewPanel(CryptoSectionID),
	}
}

// Board returns the page's panels as a render target
func (p *Page) Board() *Board {
	return NewBoard(p.Gold, p.Currency, p.Crypto)
}

// Section is a read-only view of one panel
type Section struct {
	ID       string           `json:"id"`
	Category catalog.Category `json:"category"`
	Title    string           `json:"title"`
	Notice   string           `json:"notice,omitempty"`
	Items    []SectionItem    `json:"items"`
}

// SectionItem is a read-only view of one item
type SectionItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	// AnimationDelay is the CSS animation-delay value, e.g. "0.1s"
	AnimationDelay string `json:"animation_delay"`
}

var titles = map[catalog.Category]string{
	catalog.Gold:     "طلا و سکه",
	catalog.Currency: "ارز",
	catalog.Crypto:   "ارز دیجیتال",
}

// Sections returns the panels in display order
func (p *Page) Sections() []Section {
	panels := map[catalog.Category]*Panel{
		catalog.Gold:     p.Gold,
		catalog.Currency: p.Currency,
		catalog.Crypto:   p.Crypto,
	}

	sections := make([]Section, 0, len(catalog.Priority))
	for _, category := range catalog.Priority {
		panel := panels[category]
		section := Section{
			ID:       panel.ID(),
			Category: category,
			Title:    titles[category],
			Notice:   panel.Notice(),
			Items:    make([]SectionItem, 0, len(panel.Items())),
		}
		for _, item := range panel.Items() {
			section.Items = append(section.Items, SectionItem{
				Name:           item.Name,
				Price:          item.Price,
				AnimationDelay: cssSeconds(item.Delay),
			})
		}
		sections = append(sections, section)
	}
	return sections
}

func cssSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
