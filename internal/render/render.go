package render

import (
	"time"

	"marketboard/internal/catalog"
	"marketboard/internal/market"
)

const (
	// DelayStep is the reveal animation offset between consecutive items of a panel
	DelayStep = 100 * time.Millisecond

	// ErrorMessage replaces the gold panel when a run fails
	ErrorMessage = "خطا در بارگذاری"
)

// Item is one visual entry of a panel
type Item struct {
	Name  string
	Price string
	// Delay is presentation-only; it staggers the reveal animation
	Delay time.Duration
}

// Container is a destination panel on the board
type Container interface {
	// ID returns the stable identifier of the panel
	ID() string

	// Clear removes all items and any notice
	Clear()

	// Append adds an item after the existing ones
	Append(item Item)

	// SetNotice replaces the panel content with a single text notice
	SetNotice(text string)
}

// Render repopulates every panel with its bucket, in bucket order
func Render(board *Board, results market.Results) {
	for _, category := range catalog.Priority {
		panel := board.Panel(category)
		panel.Clear()
		for i, entry := range results[category] {
			panel.Append(Item{
				Name:  entry.Name,
				Price: entry.Price,
				Delay: time.Duration(i) * DelayStep,
			})
		}
	}
}

// RenderError resets the board after a failed run.
// The gold panel shows ErrorMessage, the others are left empty.
func RenderError(board *Board) {
	for _, category := range catalog.Priority {
		board.Panel(category).Clear()
	}
	board.Panel(catalog.Gold).SetNotice(ErrorMessage)
}
