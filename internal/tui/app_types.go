package tui

import (
	"wishlist-console/internal/console"
	"wishlist-console/internal/form"
)

type pane int

const (
	paneWishlist pane = iota
	paneProduct
)

func (p pane) target() console.Target {
	if p == paneProduct {
		return console.TargetProduct
	}
	return console.TargetWishlist
}

// resultMsg carries a finished request back onto the event loop.
type resultMsg struct {
	res console.Result
}

type slotKind int

const (
	slotWishlist slotKind = iota
	slotRow
	slotProduct
)

// slot is one focusable field of a form. Row slots are addressed by row key
// so focus survives renumbering.
type slot struct {
	kind     slotKind
	field    form.Field
	rowKey   form.RowKey
	rowField form.RowField
	product  form.ProductField
}

var wishlistFields = []form.Field{
	form.FieldWishlistID,
	form.FieldUserID,
	form.FieldWishlistName,
	form.FieldArchived,
}

var rowFields = []form.RowField{form.RowProductID, form.RowName, form.RowPrice}

var productFields = []form.ProductField{
	form.ProductWishlistID,
	form.ProductLineItemID,
	form.ProductCatalogID,
	form.ProductName,
	form.ProductPrice,
}

var fieldLabels = map[string]string{
	string(form.FieldWishlistID):   "Wishlist ID",
	string(form.FieldUserID):       "User ID",
	string(form.FieldWishlistName): "Name",
	string(form.FieldArchived):     "Archived",
	string(form.ProductLineItemID): "Line item ID",
	string(form.ProductCatalogID):  "Product ID",
	string(form.ProductName):       "Product name",
	string(form.ProductPrice):      "Price",
}
