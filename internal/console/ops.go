package console

import (
	"context"
	"strings"

	"wishlist-console/internal/form"
	"wishlist-console/internal/model"
	"wishlist-console/internal/restapi"
)

func loadWishlist(s *Session, data any) {
	if w, ok := data.(model.Wishlist); ok {
		s.Wishlist.Load(w)
	}
}

func loadProduct(s *Session, data any) {
	if p, ok := data.(model.Product); ok {
		s.Product.Load(p)
	}
}

// ---------------------------------------------------------------------------
// Wishlist operations
// ---------------------------------------------------------------------------

func (s *Session) CreateWishlist() (*Request, error) {
	body, err := s.Wishlist.Wishlist(form.ModeCreate)
	if err != nil {
		return nil, s.invalid(restapi.OpCreateWishlist, err)
	}
	return s.issue(TargetWishlist, restapi.OpCreateWishlist, func(ctx context.Context) (any, error) {
		return s.api.CreateWishlist(ctx, body)
	}, loadWishlist), nil
}

func (s *Session) RetrieveWishlist() (*Request, error) {
	id, err := s.Wishlist.ID()
	if err != nil {
		return nil, s.invalid(restapi.OpGetWishlist, err)
	}
	return s.issue(TargetWishlist, restapi.OpGetWishlist, func(ctx context.Context) (any, error) {
		return s.api.GetWishlist(ctx, id)
	}, loadWishlist), nil
}

// UpdateWishlist sends the top-level fields and the pending rows only.
func (s *Session) UpdateWishlist() (*Request, error) {
	body, err := s.Wishlist.Wishlist(form.ModeUpdate)
	if err != nil {
		return nil, s.invalid(restapi.OpUpdateWishlist, err)
	}
	id := *body.WishlistID
	return s.issue(TargetWishlist, restapi.OpUpdateWishlist, func(ctx context.Context) (any, error) {
		return s.api.UpdateWishlist(ctx, id, body)
	}, loadWishlist), nil
}

func (s *Session) DeleteWishlist() (*Request, error) {
	id, err := s.Wishlist.ID()
	if err != nil {
		return nil, s.invalid(restapi.OpDeleteWishlist, err)
	}
	return s.issue(TargetWishlist, restapi.OpDeleteWishlist, func(ctx context.Context) (any, error) {
		return nil, s.api.DeleteWishlist(ctx, id)
	}, func(s *Session, _ any) {
		s.Wishlist.Clear()
		s.Status = Status{Text: StatusWishlistDeleted}
	}), nil
}

func (s *Session) ArchiveWishlist() (*Request, error) {
	id, err := s.Wishlist.ID()
	if err != nil {
		return nil, s.invalid(restapi.OpArchiveWishlist, err)
	}
	return s.issue(TargetWishlist, restapi.OpArchiveWishlist, func(ctx context.Context) (any, error) {
		return s.api.ArchiveWishlist(ctx, id)
	}, loadWishlist), nil
}

func (s *Session) UnarchiveWishlist() (*Request, error) {
	id, err := s.Wishlist.ID()
	if err != nil {
		return nil, s.invalid(restapi.OpUnarchiveWishlist, err)
	}
	return s.issue(TargetWishlist, restapi.OpUnarchiveWishlist, func(ctx context.Context) (any, error) {
		return s.api.UnarchiveWishlist(ctx, id)
	}, loadWishlist), nil
}

// SearchWishlists filters by the name field; an empty name lists every
// wishlist. The first hit is promoted into the form.
func (s *Session) SearchWishlists() (*Request, error) {
	name := strings.TrimSpace(s.Wishlist.Name)
	return s.issue(TargetWishlist, restapi.OpSearchWishlists, func(ctx context.Context) (any, error) {
		list, err := s.api.SearchWishlists(ctx, name)
		if list == nil && err == nil {
			list = []model.Wishlist{}
		}
		return list, err
	}, func(s *Session, data any) {
		list, _ := data.([]model.Wishlist)
		s.Wishlist.Promote(list)
	}), nil
}

// ---------------------------------------------------------------------------
// Product operations
// ---------------------------------------------------------------------------

func (s *Session) CreateProduct() (*Request, error) {
	body, err := s.Product.Product(form.ModeCreate)
	if err != nil {
		return nil, s.invalid(restapi.OpCreateProduct, err)
	}
	wid := *body.WishlistID
	return s.issue(TargetProduct, restapi.OpCreateProduct, func(ctx context.Context) (any, error) {
		return s.api.CreateProduct(ctx, wid, body)
	}, loadProduct), nil
}

func (s *Session) RetrieveProduct() (*Request, error) {
	wid, lid, err := s.Product.Ref()
	if err != nil {
		return nil, s.invalid(restapi.OpGetProduct, err)
	}
	return s.issue(TargetProduct, restapi.OpGetProduct, func(ctx context.Context) (any, error) {
		return s.api.GetProduct(ctx, wid, lid)
	}, loadProduct), nil
}

func (s *Session) UpdateProduct() (*Request, error) {
	body, err := s.Product.Product(form.ModeUpdate)
	if err != nil {
		return nil, s.invalid(restapi.OpUpdateProduct, err)
	}
	wid, lid := *body.WishlistID, *body.ID
	return s.issue(TargetProduct, restapi.OpUpdateProduct, func(ctx context.Context) (any, error) {
		return s.api.UpdateProduct(ctx, wid, lid, body)
	}, loadProduct), nil
}

func (s *Session) DeleteProduct() (*Request, error) {
	wid, lid, err := s.Product.Ref()
	if err != nil {
		return nil, s.invalid(restapi.OpDeleteProduct, err)
	}
	return s.issue(TargetProduct, restapi.OpDeleteProduct, func(ctx context.Context) (any, error) {
		return nil, s.api.DeleteProduct(ctx, wid, lid)
	}, func(s *Session, _ any) {
		s.Product.Clear()
		s.Status = Status{Text: StatusProductDeleted}
	}), nil
}

// SearchProducts filters the line items of the wishlist in the product form
// by whichever of name, catalog id and price are filled in.
func (s *Session) SearchProducts() (*Request, error) {
	wid, err := s.Product.ParentID()
	if err != nil {
		return nil, s.invalid(restapi.OpSearchProducts, err)
	}
	name, productID, price := s.Product.Criteria()
	criteria := restapi.ProductCriteria{Name: name, ProductID: productID, Price: price}
	return s.issue(TargetProduct, restapi.OpSearchProducts, func(ctx context.Context) (any, error) {
		list, err := s.api.SearchProducts(ctx, wid, criteria)
		if list == nil && err == nil {
			list = []model.Product{}
		}
		return list, err
	}, func(s *Session, data any) {
		list, _ := data.([]model.Product)
		s.Product.Promote(list)
	}), nil
}

// Operation returns the builder for op, for surfaces that dispatch by name.
func (s *Session) Operation(op restapi.Op) (func() (*Request, error), bool) {
	ops := map[restapi.Op]func() (*Request, error){
		restapi.OpCreateWishlist:    s.CreateWishlist,
		restapi.OpGetWishlist:       s.RetrieveWishlist,
		restapi.OpUpdateWishlist:    s.UpdateWishlist,
		restapi.OpDeleteWishlist:    s.DeleteWishlist,
		restapi.OpArchiveWishlist:   s.ArchiveWishlist,
		restapi.OpUnarchiveWishlist: s.UnarchiveWishlist,
		restapi.OpSearchWishlists:   s.SearchWishlists,
		restapi.OpCreateProduct:     s.CreateProduct,
		restapi.OpGetProduct:        s.RetrieveProduct,
		restapi.OpUpdateProduct:     s.UpdateProduct,
		restapi.OpDeleteProduct:     s.DeleteProduct,
		restapi.OpSearchProducts:    s.SearchProducts,
	}
	fn, ok := ops[op]
	return fn, ok
}
