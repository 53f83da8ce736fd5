package cli

import (
	"fmt"
	"os"

	"wishlist-console/internal/docs"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw    bool
		asHTML bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": docs.Topics()}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `wishlist-console docs` to list topics)", topic))
			}

			if asHTML {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), docs.HTML(body))
				return err
			}
			if raw || !stdoutIsTerminal(cmd) {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), docs.Render(body, width, "dark"))
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown even on a terminal")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Print the topic as an HTML fragment")
	cmd.Flags().IntVar(&width, "width", 100, "Wrap rendered docs at this width")

	return cmd
}
