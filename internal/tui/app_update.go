package tui

import (
	"context"

	"wishlist-console/internal/console"
	"wishlist-console/internal/form"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case resultMsg:
		t := msg.res.Target
		m.logger.WithFields(logrus.Fields{"op": msg.res.Op, "pane": t.String()}).Debug("response received")
		if msg.res.Generation == m.session.Generation(t) {
			m.busy[t] = false
		}
		// Stale results are dropped by the session.
		if m.session.Apply(msg.res) {
			m.syncInput()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run turns a validated request into a command whose result comes back as a
// resultMsg. Validation failures have already set the status line.
func (m *appModel) run(build func() (*console.Request, error)) tea.Cmd {
	req, err := build()
	if err != nil {
		return nil
	}
	m.busy[req.Target] = true
	ctx, timeout := m.ctx, m.timeout
	return func() tea.Msg {
		cctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return resultMsg{res: req.Run(cctx)}
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	isWishlist := m.pane == paneWishlist

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if n := len(m.slots()); n > 0 {
			m.focus[m.pane] = (m.focus[m.pane] + 1) % n
		}
		m.syncInput()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if n := len(m.slots()); n > 0 {
			m.focus[m.pane] = (m.focus[m.pane] - 1 + n) % n
		}
		m.syncInput()
		return m, nil

	case key.Matches(msg, m.keys.SwitchPane):
		if isWishlist {
			m.pane = paneProduct
		} else {
			m.pane = paneWishlist
		}
		m.syncInput()
		return m, nil

	case key.Matches(msg, m.keys.Create):
		if isWishlist {
			return m, m.run(s.CreateWishlist)
		}
		return m, m.run(s.CreateProduct)

	case key.Matches(msg, m.keys.Retrieve):
		if isWishlist {
			return m, m.run(s.RetrieveWishlist)
		}
		return m, m.run(s.RetrieveProduct)

	case key.Matches(msg, m.keys.Update):
		if isWishlist {
			return m, m.run(s.UpdateWishlist)
		}
		return m, m.run(s.UpdateProduct)

	case key.Matches(msg, m.keys.Delete):
		if isWishlist {
			return m, m.run(s.DeleteWishlist)
		}
		return m, m.run(s.DeleteProduct)

	case key.Matches(msg, m.keys.Archive), key.Matches(msg, m.keys.Unarchive):
		if !isWishlist {
			s.Status = console.Status{Text: "archive applies to wishlists", Err: true}
			return m, nil
		}
		if key.Matches(msg, m.keys.Archive) {
			return m, m.run(s.ArchiveWishlist)
		}
		return m, m.run(s.UnarchiveWishlist)

	case key.Matches(msg, m.keys.Search):
		if isWishlist {
			return m, m.run(s.SearchWishlists)
		}
		return m, m.run(s.SearchProducts)

	case key.Matches(msg, m.keys.Clear):
		t := m.pane.target()
		s.Clear(t)
		m.busy[t] = false
		m.focus[m.pane] = 0
		m.syncInput()
		return m, nil

	case key.Matches(msg, m.keys.AddRow):
		if !isWishlist {
			return m, nil
		}
		row := s.Wishlist.Rows.AppendBlank()
		m.focusSlot(func(sl slot) bool { return sl.kind == slotRow && sl.rowKey == row.Key })
		return m, nil

	case key.Matches(msg, m.keys.RemoveRow):
		cur, ok := m.current()
		if !isWishlist || !ok || cur.kind != slotRow {
			s.Status = console.Status{Text: "focus a product row to remove it", Err: true}
			return m, nil
		}
		s.Wishlist.Rows.Remove(cur.rowKey)
		m.syncInput()
		return m, nil
	}

	cur, ok := m.current()
	if !ok {
		return m, nil
	}
	if isWishlist && cur.kind == slotWishlist && cur.field == form.FieldArchived && key.Matches(msg, m.keys.Toggle) {
		s.Wishlist.Archived = !s.Wishlist.Archived
		m.syncInput()
		return m, nil
	}
	if !m.editable(cur) {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if err := m.setSlot(cur, m.input.Value()); err != nil {
		s.Status = console.Status{Text: err.Error(), Err: true}
	}
	return m, cmd
}
