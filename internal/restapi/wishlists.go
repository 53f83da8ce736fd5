package restapi

import (
	"context"
	"fmt"
	"net/http"

	"wishlist-console/internal/model"
)

func wishlistPath(id int64) string { return fmt.Sprintf("/wishlists/%d", id) }

func (c *Client) CreateWishlist(ctx context.Context, req model.WishlistRequest) (model.Wishlist, error) {
	var out model.Wishlist
	err := c.do(ctx, OpCreateWishlist, http.MethodPost, "/wishlists", "", req, &out)
	return out, err
}

func (c *Client) GetWishlist(ctx context.Context, id int64) (model.Wishlist, error) {
	var out model.Wishlist
	err := c.do(ctx, OpGetWishlist, http.MethodGet, wishlistPath(id), "", nil, &out)
	return out, err
}

func (c *Client) UpdateWishlist(ctx context.Context, id int64, req model.WishlistRequest) (model.Wishlist, error) {
	var out model.Wishlist
	err := c.do(ctx, OpUpdateWishlist, http.MethodPut, wishlistPath(id), "", req, &out)
	return out, err
}

func (c *Client) DeleteWishlist(ctx context.Context, id int64) error {
	return c.do(ctx, OpDeleteWishlist, http.MethodDelete, wishlistPath(id), "", nil, nil)
}

// ArchiveWishlist sends PUT /wishlists/{id}/archive without a body.
func (c *Client) ArchiveWishlist(ctx context.Context, id int64) (model.Wishlist, error) {
	var out model.Wishlist
	err := c.do(ctx, OpArchiveWishlist, http.MethodPut, wishlistPath(id)+"/archive", "", nil, &out)
	return out, err
}

func (c *Client) UnarchiveWishlist(ctx context.Context, id int64) (model.Wishlist, error) {
	var out model.Wishlist
	err := c.do(ctx, OpUnarchiveWishlist, http.MethodPut, wishlistPath(id)+"/unarchive", "", nil, &out)
	return out, err
}

// SearchWishlists lists wishlists, filtered by name when name is non-empty.
func (c *Client) SearchWishlists(ctx context.Context, name string) ([]model.Wishlist, error) {
	var out []model.Wishlist
	err := c.do(ctx, OpSearchWishlists, http.MethodGet, "/wishlists", wishlistSearchQuery(name), nil, &out)
	return out, err
}
