package cli

import (
	"fmt"
	"strings"

	"wishlist-console/internal/console"
	"wishlist-console/internal/form"

	"github.com/spf13/cobra"
)

func newWishlistsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wishlists",
		Aliases: []string{"wishlist", "wl"},
		Short:   "Create, edit and search wishlists",
	}

	cmd.AddCommand(newWishlistsCreateCmd(app))
	cmd.AddCommand(newWishlistsGetCmd(app))
	cmd.AddCommand(newWishlistsUpdateCmd(app))
	cmd.AddCommand(newWishlistsIDCmd(app, "delete", "Delete a wishlist", (*console.Session).DeleteWishlist))
	cmd.AddCommand(newWishlistsIDCmd(app, "archive", "Archive a wishlist", (*console.Session).ArchiveWishlist))
	cmd.AddCommand(newWishlistsIDCmd(app, "unarchive", "Unarchive a wishlist", (*console.Session).UnarchiveWishlist))
	cmd.AddCommand(newWishlistsSearchCmd(app))

	return cmd
}

// productSpec parses PRODUCT_ID:NAME:PRICE. The name may itself contain
// colons.
type productSpec struct {
	ProductID string
	Name      string
	Price     string
}

func parseProductSpec(s string) (productSpec, error) {
	first := strings.Index(s, ":")
	last := strings.LastIndex(s, ":")
	if first < 0 || first == last {
		return productSpec{}, fmt.Errorf("invalid --product %q (expected PRODUCT_ID:NAME:PRICE)", s)
	}
	return productSpec{
		ProductID: strings.TrimSpace(s[:first]),
		Name:      strings.TrimSpace(s[first+1 : last]),
		Price:     strings.TrimSpace(s[last+1:]),
	}, nil
}

// addRows appends one pending row per --product value.
func addRows(st *form.State, specs []string) error {
	for _, raw := range specs {
		spec, err := parseProductSpec(raw)
		if err != nil {
			return err
		}
		row := st.Rows.AppendBlank()
		for f, v := range map[form.RowField]string{
			form.RowProductID: spec.ProductID,
			form.RowName:      spec.Name,
			form.RowPrice:     spec.Price,
		} {
			if err := st.Rows.SetField(row.Key, f, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func newWishlistsCreateCmd(app *App) *cobra.Command {
	var (
		name     string
		userID   string
		archived bool
		products []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a wishlist, optionally with products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(e *env) error {
				st := e.session.Wishlist
				st.Name = name
				st.UserID = userID
				st.Archived = archived
				if err := addRows(st, products); err != nil {
					return err
				}
				res, err := do(cmd, app, e, e.session.CreateWishlist)
				if err != nil {
					return err
				}
				return emit(cmd, app, res, e.session.Status)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Wishlist name (required)")
	cmd.Flags().StringVar(&userID, "user", "", "Owning user id (required)")
	cmd.Flags().BoolVar(&archived, "archived", false, "Create the wishlist archived")
	cmd.Flags().StringArrayVar(&products, "product", nil, "Product row as PRODUCT_ID:NAME:PRICE (repeatable)")

	return cmd
}

func newWishlistsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "get <wishlist-id>",
		Aliases: []string{"show"},
		Short:   "Retrieve a wishlist with its products",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(e *env) error {
				e.session.Wishlist.WishlistID = args[0]
				res, err := do(cmd, app, e, e.session.RetrieveWishlist)
				if err != nil {
					return err
				}
				return emit(cmd, app, res, e.session.Status)
			})
		},
	}
}

func newWishlistsUpdateCmd(app *App) *cobra.Command {
	var (
		name     string
		userID   string
		archived bool
		products []string
	)

	cmd := &cobra.Command{
		Use:   "update <wishlist-id>",
		Short: "Update a wishlist; --product rows are added as new products",
		Long: strings.TrimSpace(`
Update retrieves the wishlist first, applies the given flags on top of it and
sends the result. Existing products are never re-sent; every --product is a new
line item.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(e *env) error {
				st := e.session.Wishlist
				st.WishlistID = args[0]
				if _, err := do(cmd, app, e, e.session.RetrieveWishlist); err != nil {
					return err
				}
				if cmd.Flags().Changed("name") {
					st.Name = name
				}
				if cmd.Flags().Changed("user") {
					st.UserID = userID
				}
				if cmd.Flags().Changed("archived") {
					st.Archived = archived
				}
				if err := addRows(st, products); err != nil {
					return err
				}
				res, err := do(cmd, app, e, e.session.UpdateWishlist)
				if err != nil {
					return err
				}
				return emit(cmd, app, res, e.session.Status)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New wishlist name")
	cmd.Flags().StringVar(&userID, "user", "", "New owning user id")
	cmd.Flags().BoolVar(&archived, "archived", false, "Set the archived flag")
	cmd.Flags().StringArrayVar(&products, "product", nil, "New product row as PRODUCT_ID:NAME:PRICE (repeatable)")

	return cmd
}

// newWishlistsIDCmd builds a command that addresses one wishlist by id and
// sends no body.
func newWishlistsIDCmd(app *App, use, short string, op func(*console.Session) (*console.Request, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <wishlist-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(e *env) error {
				e.session.Wishlist.WishlistID = args[0]
				res, err := do(cmd, app, e, func() (*console.Request, error) { return op(e.session) })
				if err != nil {
					return err
				}
				return emit(cmd, app, res, e.session.Status)
			})
		},
	}
}

func newWishlistsSearchCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search wishlists by name (all wishlists when --name is empty)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(e *env) error {
				e.session.Wishlist.Name = name
				res, err := do(cmd, app, e, e.session.SearchWishlists)
				if err != nil {
					return err
				}
				return emit(cmd, app, res, e.session.Status)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name to search for")

	return cmd
}
