package cli

import (
	"fmt"

	"wishlist-console/internal/console"
	"wishlist-console/internal/model"
	"wishlist-console/internal/render"

	"github.com/spf13/cobra"
)

// emit writes the outcome of one operation. Searches and single records can
// also be drawn as a table; deletes only have a status.
func emit(cmd *cobra.Command, app *App, res console.Result, status console.Status) error {
	if !isTableFormat(app.Format) {
		data := res.Data
		if data == nil {
			data = map[string]any{}
		}
		return writeOut(cmd, app, envelope(data, status))
	}

	r, err := render.New(app.Format, 0)
	if err != nil {
		return err
	}
	var out string
	switch v := res.Data.(type) {
	case model.Wishlist:
		out = r.Wishlists([]model.Wishlist{v})
	case []model.Wishlist:
		out = r.Wishlists(v)
	case model.Product:
		out = r.Products([]model.Product{v})
	case []model.Product:
		out = r.Products(v)
	default:
		out = status.Text
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
