package cli

import (
	"wishlist-console/internal/console"
	"wishlist-console/internal/form"

	"github.com/spf13/cobra"
)

func newProductsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Address single wishlist line items",
	}

	cmd.AddCommand(newProductsCreateCmd(app))
	cmd.AddCommand(newProductsRefCmd(app, "get <wishlist-id> <line-item-id>", "Retrieve one line item", (*console.Session).RetrieveProduct))
	cmd.AddCommand(newProductsUpdateCmd(app))
	cmd.AddCommand(newProductsRefCmd(app, "delete <wishlist-id> <line-item-id>", "Delete one line item", (*console.Session).DeleteProduct))
	cmd.AddCommand(newProductsSearchCmd(app))

	return cmd
}

// productFlags are the editable product fields shared by create, update and
// search.
type productFlags struct {
	productID string
	name      string
	price     string
}

func (p *productFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.productID, "product-id", "", "Catalog product id")
	cmd.Flags().StringVar(&p.name, "name", "", "Product name")
	cmd.Flags().StringVar(&p.price, "price", "", "Product price")
}

// apply copies the flags given on the command line onto f.
func (p *productFlags) apply(cmd *cobra.Command, f *form.ProductForm) {
	if cmd.Flags().Changed("product-id") {
		f.ProductID = p.productID
	}
	if cmd.Flags().Changed("name") {
		f.Name = p.name
	}
	if cmd.Flags().Changed("price") {
		f.Price = p.price
	}
}

func newProductsCreateCmd(app *App) *cobra.Command {
	var (
		wishlistID string
		flags      productFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a product to a wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(e *env) error {
				e.session.Product.WishlistID = wishlistID
				flags.apply(cmd, e.session.Product)
				res, err := do(cmd, app, e, e.session.CreateProduct)
				if err != nil {
					return err
				}
				return emit(cmd, app, res, e.session.Status)
			})
		},
	}

	cmd.Flags().StringVar(&wishlistID, "wishlist", "", "Wishlist id (required)")
	flags.bind(cmd)

	return cmd
}

func newProductsRefCmd(app *App, use, short string, op func(*console.Session) (*console.Request, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(e *env) error {
				e.session.Product.WishlistID = args[0]
				e.session.Product.LineItemID = args[1]
				res, err := do(cmd, app, e, func() (*console.Request, error) { return op(e.session) })
				if err != nil {
					return err
				}
				return emit(cmd, app, res, e.session.Status)
			})
		},
	}
}

func newProductsUpdateCmd(app *App) *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "update <wishlist-id> <line-item-id>",
		Short: "Update one line item; unset flags keep their current value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(e *env) error {
				f := e.session.Product
				f.WishlistID = args[0]
				f.LineItemID = args[1]
				if _, err := do(cmd, app, e, e.session.RetrieveProduct); err != nil {
					return err
				}
				flags.apply(cmd, f)
				res, err := do(cmd, app, e, e.session.UpdateProduct)
				if err != nil {
					return err
				}
				return emit(cmd, app, res, e.session.Status)
			})
		},
	}

	flags.bind(cmd)

	return cmd
}

func newProductsSearchCmd(app *App) *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "search <wishlist-id>",
		Short: "Search the products of a wishlist by name, catalog id and price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(e *env) error {
				e.session.Product.WishlistID = args[0]
				flags.apply(cmd, e.session.Product)
				res, err := do(cmd, app, e, e.session.SearchProducts)
				if err != nil {
					return err
				}
				return emit(cmd, app, res, e.session.Status)
			})
		},
	}

	flags.bind(cmd)

	return cmd
}
