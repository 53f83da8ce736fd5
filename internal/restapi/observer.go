package restapi

import (
	"context"
	"time"
)

// Op names one (entity, verb) pair of the wishlist service.
type Op string

const (
	OpCreateWishlist    Op = "wishlist.create"
	OpGetWishlist       Op = "wishlist.retrieve"
	OpUpdateWishlist    Op = "wishlist.update"
	OpDeleteWishlist    Op = "wishlist.delete"
	OpArchiveWishlist   Op = "wishlist.archive"
	OpUnarchiveWishlist Op = "wishlist.unarchive"
	OpSearchWishlists   Op = "wishlist.search"

	OpCreateProduct  Op = "product.create"
	OpGetProduct     Op = "product.retrieve"
	OpUpdateProduct  Op = "product.update"
	OpDeleteProduct  Op = "product.delete"
	OpSearchProducts Op = "product.search"
)

// Ops lists every operation in a stable order.
func Ops() []Op {
	return []Op{
		OpCreateWishlist, OpGetWishlist, OpUpdateWishlist, OpDeleteWishlist,
		OpArchiveWishlist, OpUnarchiveWishlist, OpSearchWishlists,
		OpCreateProduct, OpGetProduct, OpUpdateProduct, OpDeleteProduct, OpSearchProducts,
	}
}

// Record describes one finished request.
type Record struct {
	Op       Op
	Method   string
	Path     string
	Query    string
	Status   int
	Duration time.Duration
	Err      error
}

func (r Record) OK() bool { return r.Err == nil }

// Observer is notified after every request, successful or not.
type Observer interface {
	ObserveRequest(ctx context.Context, rec Record)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, rec Record)

func (f ObserverFunc) ObserveRequest(ctx context.Context, rec Record) { f(ctx, rec) }
