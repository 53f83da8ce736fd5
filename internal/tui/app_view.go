package tui

import (
	"fmt"
	"strconv"
	"strings"

	"wishlist-console/internal/render"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	header := titleStyle.Render("Wishlist console")
	if m.baseURL != "" {
		header += mutedStyle.Render("  " + m.baseURL)
	}

	wishlist := m.wishlistPanel()
	product := m.productPanel()
	var forms string
	if m.width >= 100 {
		forms = lipgloss.JoinHorizontal(lipgloss.Top, wishlist, " ", product)
	} else {
		forms = lipgloss.JoinVertical(lipgloss.Left, wishlist, product)
	}

	var results string
	r := render.Terminal{}
	if m.pane == paneProduct {
		results = r.Products(m.session.Product.Results)
	} else {
		results = r.Wishlists(m.session.Wishlist.Results)
	}

	parts := []string{header, forms, mutedStyle.Render("Search results"), results, m.statusLine(), m.help.View(m.keys)}
	out := strings.Join(parts, "\n")
	if m.width > 0 {
		out = clipWidth(out, m.width)
	}
	return out
}

func clipWidth(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if xansi.StringWidth(ln) > width {
			lines[i] = xansi.Truncate(ln, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func (m appModel) statusLine() string {
	st := m.session.Status
	var busy []string
	if m.busy[paneWishlist] {
		busy = append(busy, "wishlist")
	}
	if m.busy[paneProduct] {
		busy = append(busy, "product")
	}
	line := ""
	switch {
	case st.Text == "":
	case st.Err:
		line = statusErrStyle.Render(st.Text)
	default:
		line = statusOKStyle.Render(st.Text)
	}
	if len(busy) > 0 {
		if line != "" {
			line += "  "
		}
		line += mutedStyle.Render("working: " + strings.Join(busy, ", ") + "…")
	}
	return line
}

// fieldLine renders one labeled value, showing the editor when it has focus.
func (m appModel) fieldLine(label string, value string, focused bool) string {
	if focused {
		return focusLabelStyle.Render(label) + m.input.View()
	}
	if value == "" {
		value = mutedStyle.Render("·")
	}
	return labelStyle.Render(label) + value
}

func (m appModel) wishlistPanel() string {
	cur, hasCur := m.current()
	active := m.pane == paneWishlist
	isFocused := func(s slot) bool { return active && hasCur && s == cur }

	w := m.session.Wishlist
	lines := []string{titleStyle.Render("Wishlist")}
	for _, f := range wishlistFields {
		s := slot{kind: slotWishlist, field: f}
		lines = append(lines, m.fieldLine(fieldLabels[string(f)], w.Get(f), isFocused(s)))
	}

	lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("Products (%d)", w.Rows.Len())))
	if w.Rows.Len() == 0 {
		lines = append(lines, mutedStyle.Render("  none; ctrl+p adds a row"))
	}
	for i, r := range w.Rows.All() {
		cells := make([]string, 0, len(rowFields))
		for _, f := range rowFields {
			s := slot{kind: slotRow, rowKey: r.Key, rowField: f}
			v := r.Get(f)
			switch {
			case isFocused(s):
				v = "[" + m.input.View() + "]"
			case v == "":
				v = "·"
			}
			cells = append(cells, v)
		}
		tag := "saved"
		style := mutedStyle
		if !r.Persisted {
			tag = "new"
			style = pendingRowStyle
		}
		lines = append(lines, fmt.Sprintf("%3s  %s  %s", strconv.Itoa(i+1), strings.Join(cells, " | "), style.Render(tag)))
	}

	st := panelStyle
	if active {
		st = activePanelStyle
	}
	return st.Render(strings.Join(lines, "\n"))
}

func (m appModel) productPanel() string {
	cur, hasCur := m.current()
	active := m.pane == paneProduct

	p := m.session.Product
	lines := []string{titleStyle.Render("Product")}
	for _, f := range productFields {
		s := slot{kind: slotProduct, product: f}
		lines = append(lines, m.fieldLine(fieldLabels[string(f)], p.Get(f), active && hasCur && s == cur))
	}

	st := panelStyle
	if active {
		st = activePanelStyle
	}
	return st.Render(strings.Join(lines, "\n"))
}
