// Package render draws search results as tables. Both backends share the same
// cell layout: one row per wishlist with a nested product sub-table, or one
// row per product line item.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"wishlist-console/internal/model"
)

// Renderer turns result lists into displayable text. An empty or nil list
// yields a header-only table.
type Renderer interface {
	Wishlists(list []model.Wishlist) string
	Products(list []model.Product) string
}

// New returns the renderer registered under name ("table" or "html").
func New(name string, width int) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table":
		return Terminal{Width: width}, nil
	case "html":
		return HTML{}, nil
	default:
		return nil, fmt.Errorf("unknown table format %q (expected table|html)", name)
	}
}

var (
	wishlistHeaders = []string{"Wishlist ID", "User ID", "Wishlist Name", "Archived", "Products"}
	productHeaders  = []string{"Product ID", "Product Name", "Price"}
	lineHeaders     = []string{"ID", "Wishlist ID", "Product ID", "Product Name", "Price"}
)

// placeholderRows is how many blank rows a wishlist without products still
// gets in its sub-table, so every wishlist row has the same minimum height.
const placeholderRows = 2

type wishlistView struct {
	Index    int
	ID       string
	UserID   string
	Name     string
	Archived string
	Products [][]string
}

func id(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func productCells(products []model.Product) [][]string {
	if len(products) == 0 {
		out := make([][]string, placeholderRows)
		for i := range out {
			out[i] = []string{"", "", ""}
		}
		return out
	}
	out := make([][]string, 0, len(products))
	for _, p := range products {
		out = append(out, []string{strconv.FormatInt(p.ProductID, 10), p.Name, p.Price.String()})
	}
	return out
}

func wishlistViews(list []model.Wishlist) []wishlistView {
	out := make([]wishlistView, 0, len(list))
	for i, w := range list {
		out = append(out, wishlistView{
			Index:    i,
			ID:       id(w.ID),
			UserID:   strconv.FormatInt(w.UserID, 10),
			Name:     w.Name,
			Archived: strconv.FormatBool(w.Archived),
			Products: productCells(w.Products),
		})
	}
	return out
}

func lineCells(list []model.Product) [][]string {
	out := make([][]string, 0, len(list))
	for _, p := range list {
		out = append(out, []string{
			id(p.ID),
			id(p.WishlistID),
			strconv.FormatInt(p.ProductID, 10),
			p.Name,
			p.Price.String(),
		})
	}
	return out
}

// EmptyWishlists is the header-only wishlist table shown after an empty or
// failed search.
func EmptyWishlists(r Renderer) string { return r.Wishlists(nil) }

func EmptyProducts(r Renderer) string { return r.Products(nil) }
