package restapi

import (
	"context"
	"fmt"
	"net/http"

	"wishlist-console/internal/model"
)

func productsPath(wishlistID int64) string {
	return fmt.Sprintf("/wishlists/%d/products", wishlistID)
}

func productPath(wishlistID, lineItemID int64) string {
	return fmt.Sprintf("/wishlists/%d/products/%d", wishlistID, lineItemID)
}

func (c *Client) CreateProduct(ctx context.Context, wishlistID int64, req model.ProductRequest) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, OpCreateProduct, http.MethodPost, productsPath(wishlistID), "", req, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, wishlistID, lineItemID int64) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, OpGetProduct, http.MethodGet, productPath(wishlistID, lineItemID), "", nil, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, wishlistID, lineItemID int64, req model.ProductRequest) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, OpUpdateProduct, http.MethodPut, productPath(wishlistID, lineItemID), "", req, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, wishlistID, lineItemID int64) error {
	return c.do(ctx, OpDeleteProduct, http.MethodDelete, productPath(wishlistID, lineItemID), "", nil, nil)
}

func (c *Client) SearchProducts(ctx context.Context, wishlistID int64, criteria ProductCriteria) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, OpSearchProducts, http.MethodGet, productsPath(wishlistID), criteria.Query(), nil, &out)
	return out, err
}
