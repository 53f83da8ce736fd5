// Package tui is the interactive wishlist editor. It drives a
// console.Session from the bubbletea event loop: every request runs in a
// command and its result comes back as a message.
package tui

import (
	"context"
	"time"

	"wishlist-console/internal/console"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type Options struct {
	BaseURL string
	// Timeout bounds each request; zero uses the default.
	Timeout time.Duration
	Logger  logrus.FieldLogger
}

func Run(ctx context.Context, session *console.Session, opts Options) error {
	m := newAppModel(ctx, session, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
