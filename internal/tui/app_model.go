package tui

import (
	"context"
	"time"

	"wishlist-console/internal/console"
	"wishlist-console/internal/form"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sirupsen/logrus"
)

const defaultRequestTimeout = 10 * time.Second

type appModel struct {
	ctx     context.Context
	timeout time.Duration
	baseURL string
	logger  logrus.FieldLogger

	session *console.Session

	width  int
	height int

	pane  pane
	focus [2]int
	busy  [2]bool

	input    textinput.Model
	keys     keyMap
	help     help.Model
	showHelp bool
}

func newAppModel(ctx context.Context, session *console.Session, opts Options) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}

	m := appModel{
		ctx:     ctx,
		timeout: timeout,
		baseURL: opts.BaseURL,
		logger:  logger,
		session: session,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.CharLimit = 200
	m.input.Width = 32
	m.input.Focus()
	m.syncInput()
	return m
}

func (m appModel) slots() []slot {
	if m.pane == paneProduct {
		out := make([]slot, 0, len(productFields))
		for _, f := range productFields {
			out = append(out, slot{kind: slotProduct, product: f})
		}
		return out
	}
	out := make([]slot, 0, len(wishlistFields)+3*m.session.Wishlist.Rows.Len())
	for _, f := range wishlistFields {
		out = append(out, slot{kind: slotWishlist, field: f})
	}
	for _, r := range m.session.Wishlist.Rows.All() {
		for _, f := range rowFields {
			out = append(out, slot{kind: slotRow, rowKey: r.Key, rowField: f})
		}
	}
	return out
}

func (m appModel) current() (slot, bool) {
	slots := m.slots()
	i := m.focus[m.pane]
	if i < 0 || i >= len(slots) {
		return slot{}, false
	}
	return slots[i], true
}

func (m appModel) slotValue(s slot) string {
	switch s.kind {
	case slotWishlist:
		return m.session.Wishlist.Get(s.field)
	case slotRow:
		if r, ok := m.session.Wishlist.Rows.Get(s.rowKey); ok {
			return r.Get(s.rowField)
		}
	case slotProduct:
		return m.session.Product.Get(s.product)
	}
	return ""
}

func (m appModel) setSlot(s slot, v string) error {
	switch s.kind {
	case slotWishlist:
		return m.session.Wishlist.Set(s.field, v)
	case slotRow:
		return m.session.Wishlist.Rows.SetField(s.rowKey, s.rowField, v)
	case slotProduct:
		return m.session.Product.Set(s.product, v)
	}
	return nil
}

// editable reports whether typing changes s. Persisted rows are read-only
// and archived is toggled, not typed.
func (m appModel) editable(s slot) bool {
	switch s.kind {
	case slotWishlist:
		return s.field != form.FieldArchived
	case slotRow:
		r, ok := m.session.Wishlist.Rows.Get(s.rowKey)
		return ok && !r.Persisted
	}
	return true
}

// clampFocus keeps focus on an existing slot after the form changed shape.
func (m *appModel) clampFocus() {
	n := len(m.slots())
	i := m.focus[m.pane]
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	m.focus[m.pane] = i
}

// syncInput loads the focused slot into the editor line.
func (m *appModel) syncInput() {
	m.clampFocus()
	s, ok := m.current()
	if !ok {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.slotValue(s))
	m.input.CursorEnd()
}

func (m *appModel) focusSlot(match func(slot) bool) {
	for i, s := range m.slots() {
		if match(s) {
			m.focus[m.pane] = i
			break
		}
	}
	m.syncInput()
}
