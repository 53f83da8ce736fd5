package render

import (
	"wishlist-console/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xansi "github.com/charmbracelet/x/ansi"
)

// maxCell caps any single cell; long names are cut with an ellipsis.
const maxCell = 32

var (
	colorBorder = lipgloss.AdaptiveColor{Light: "250", Dark: "240"}
	colorHeader = lipgloss.AdaptiveColor{Light: "25", Dark: "117"}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(colorBorder)
)

// Terminal renders tables with box-drawing borders. Width, when positive,
// fixes the outer table width.
type Terminal struct {
	Width int
}

func truncate(s string, w int) string {
	if w <= 0 || xansi.StringWidth(s) <= w {
		return s
	}
	return xansi.Truncate(s, w, "…")
}

func truncateRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(r))
		for j, c := range r {
			cells[j] = truncate(c, maxCell)
		}
		out[i] = cells
	}
	return out
}

func styleFunc(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func (t Terminal) newTable(headers []string, rows [][]string) *table.Table {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(truncateRows(rows)...).
		StyleFunc(styleFunc)
	if t.Width > 0 {
		tbl = tbl.Width(t.Width)
	}
	return tbl
}

func (t Terminal) productTable(rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(productHeaders...).
		Rows(truncateRows(rows)...).
		StyleFunc(styleFunc).
		String()
}

func (t Terminal) Wishlists(list []model.Wishlist) string {
	views := wishlistViews(list)
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{v.ID, v.UserID, truncate(v.Name, maxCell), v.Archived, t.productTable(v.Products)})
	}
	// The nested table is already sized; only the flat cells are cut.
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderRow(true).
		Headers(wishlistHeaders...).
		Rows(rows...).
		StyleFunc(styleFunc)
	if t.Width > 0 {
		tbl = tbl.Width(t.Width)
	}
	return tbl.String()
}

func (t Terminal) Products(list []model.Product) string {
	return t.newTable(lineHeaders, lineCells(list)).String()
}
