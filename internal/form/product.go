package form

import (
	"strconv"
	"strings"

	"wishlist-console/internal/model"
)

type ProductField string

const (
	ProductLineItemID ProductField = "id"
	ProductWishlistID ProductField = "wishlist_id"
	ProductCatalogID  ProductField = "product_id"
	ProductName       ProductField = "product_name"
	ProductPrice      ProductField = "product_price"
)

// ProductForm addresses a single line item directly, outside the wishlist
// editor. Its fields double as the product search criteria.
type ProductForm struct {
	LineItemID string
	WishlistID string
	ProductID  string
	Name       string
	Price      string

	// Results is the last product search result.
	Results []model.Product
}

func (f *ProductForm) Load(p model.Product) {
	f.LineItemID = formatID(p.ID)
	f.WishlistID = formatID(p.WishlistID)
	f.ProductID = strconv.FormatInt(p.ProductID, 10)
	f.Name = p.Name
	f.Price = p.Price.String()
}

// Promote shows list as the search result and loads its first entry.
func (f *ProductForm) Promote(list []model.Product) bool {
	f.Results = append([]model.Product(nil), list...)
	if len(list) == 0 {
		return false
	}
	f.Load(list[0])
	return true
}

func (f *ProductForm) Clear() {
	*f = ProductForm{}
}

func (f *ProductForm) ClearResults() { f.Results = nil }

func (f *ProductForm) Get(field ProductField) string {
	switch field {
	case ProductLineItemID:
		return f.LineItemID
	case ProductWishlistID:
		return f.WishlistID
	case ProductCatalogID:
		return f.ProductID
	case ProductName:
		return f.Name
	case ProductPrice:
		return f.Price
	}
	return ""
}

func (f *ProductForm) Set(field ProductField, value string) error {
	switch field {
	case ProductLineItemID:
		f.LineItemID = value
	case ProductWishlistID:
		f.WishlistID = value
	case ProductCatalogID:
		f.ProductID = value
	case ProductName:
		f.Name = value
	case ProductPrice:
		f.Price = value
	default:
		return &FieldError{Field: string(field), Reason: "is not a product field"}
	}
	return nil
}

// ParentID parses the wishlist id the product belongs to.
func (f *ProductForm) ParentID() (int64, error) {
	id := strings.TrimSpace(f.WishlistID)
	if err := check(wishlistRef{WishlistID: id}); err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, notNumber(string(ProductWishlistID))
	}
	return n, nil
}

// Ref parses the wishlist id and line item id addressing one product.
func (f *ProductForm) Ref() (wishlistID, lineItemID int64, err error) {
	ref := productRef{
		WishlistID: strings.TrimSpace(f.WishlistID),
		LineItemID: strings.TrimSpace(f.LineItemID),
	}
	if err := check(ref); err != nil {
		return 0, 0, err
	}
	if wishlistID, err = strconv.ParseInt(ref.WishlistID, 10, 64); err != nil {
		return 0, 0, notNumber(string(ProductWishlistID))
	}
	if lineItemID, err = strconv.ParseInt(ref.LineItemID, 10, 64); err != nil {
		return 0, 0, notNumber(string(ProductLineItemID))
	}
	return wishlistID, lineItemID, nil
}

// Product builds the request body. The line item id is included in mode
// ModeUpdate only.
func (f *ProductForm) Product(mode Mode) (model.ProductRequest, error) {
	in := productInput{
		WishlistID: strings.TrimSpace(f.WishlistID),
		ProductID:  strings.TrimSpace(f.ProductID),
		Name:       strings.TrimSpace(f.Name),
		Price:      strings.TrimSpace(f.Price),
	}
	var req model.ProductRequest
	if mode == ModeUpdate {
		_, lineID, err := f.Ref()
		if err != nil {
			return model.ProductRequest{}, err
		}
		req.ID = model.Int64(lineID)
	}
	if err := check(in); err != nil {
		return model.ProductRequest{}, err
	}
	wid, err := strconv.ParseInt(in.WishlistID, 10, 64)
	if err != nil {
		return model.ProductRequest{}, notNumber(string(ProductWishlistID))
	}
	pid, err := strconv.ParseInt(in.ProductID, 10, 64)
	if err != nil {
		return model.ProductRequest{}, notNumber(string(ProductCatalogID))
	}
	price, err := model.ParsePrice(in.Price)
	if err != nil {
		return model.ProductRequest{}, notNumber(string(ProductPrice))
	}
	req.WishlistID = model.Int64(wid)
	req.ProductID = pid
	req.Name = in.Name
	req.Price = price
	return req, nil
}

// Criteria returns the search filters as typed, trimmed.
func (f *ProductForm) Criteria() (name, productID, price string) {
	return strings.TrimSpace(f.Name), strings.TrimSpace(f.ProductID), strings.TrimSpace(f.Price)
}
