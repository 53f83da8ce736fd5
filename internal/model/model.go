package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Wishlist struct {
	ID       int64     `json:"id,omitempty"`
	UserID   int64     `json:"user_id"`
	Name     string    `json:"wishlist_name"`
	Archived bool      `json:"archived"`
	Products []Product `json:"wishlist_products"`
}

// Product is a wishlist line item. ID is the server-assigned line item id;
// ProductID is the catalog id and is not unique within a wishlist.
type Product struct {
	ID         int64  `json:"id,omitempty"`
	WishlistID int64  `json:"wishlist_id,omitempty"`
	ProductID  int64  `json:"product_id"`
	Name       string `json:"product_name"`
	Price      Price  `json:"product_price"`
}

// WishlistRequest is the body of POST /wishlists and PUT /wishlists/{id}.
// WishlistID is only set for updates.
type WishlistRequest struct {
	WishlistID *int64           `json:"wishlist_id,omitempty"`
	Name       string           `json:"wishlist_name"`
	UserID     int64            `json:"user_id"`
	Archived   bool             `json:"archived"`
	Products   []ProductRequest `json:"wishlist_products"`
}

// ProductRequest is the body of product creation and update.
//
// WishlistID is always sent; it is null for products nested in a wishlist
// that does not exist yet.
type ProductRequest struct {
	ID         *int64 `json:"id,omitempty"`
	WishlistID *int64 `json:"wishlist_id"`
	ProductID  int64  `json:"product_id"`
	Name       string `json:"product_name"`
	Price      Price  `json:"product_price"`
}

// Price is a decimal product price. It is encoded as a bare JSON number and
// accepts both numbers and numeric strings when decoding.
type Price struct {
	decimal.Decimal
}

func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, err
	}
	return Price{Decimal: d}, nil
}

func MustPrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

func (p Price) Equal(o Price) bool { return p.Decimal.Equal(o.Decimal) }

func Int64(v int64) *int64 { return &v }
