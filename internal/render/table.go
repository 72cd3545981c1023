package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteTable writes one table per panel, suitable for a terminal
func WriteTable(w io.Writer, page *Page) {
	for _, section := range page.Sections() {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.SetTitle(section.Title)
		t.AppendHeader(table.Row{"#", "Name", "Price"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight},
		})

		if section.Notice != "" {
			t.AppendRow(table.Row{"", section.Notice, ""})
		}
		for i, item := range section.Items {
			t.AppendRow(table.Row{i + 1, item.Name, item.Price})
		}

		t.Render()
	}
}
