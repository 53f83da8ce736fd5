// Package console is the controller behind every console surface. A Session
// owns the wishlist and product forms, turns each user intent into a REST
// request and applies the response (or the failure policy) back onto the
// forms.
//
// Requests are issued in two steps so the caller decides where the network
// call runs: an operation method validates the form and returns a Request;
// Request.Run performs the call without touching the session; Session.Apply
// folds the Result back in on the caller's goroutine. Each form has its own
// request generation and results from superseded requests are discarded.
package console

import (
	"context"
	"errors"

	"wishlist-console/internal/form"
	"wishlist-console/internal/model"
	"wishlist-console/internal/restapi"

	"github.com/sirupsen/logrus"
)

// API is the subset of the wishlist service the session drives.
type API interface {
	CreateWishlist(ctx context.Context, req model.WishlistRequest) (model.Wishlist, error)
	GetWishlist(ctx context.Context, id int64) (model.Wishlist, error)
	UpdateWishlist(ctx context.Context, id int64, req model.WishlistRequest) (model.Wishlist, error)
	DeleteWishlist(ctx context.Context, id int64) error
	ArchiveWishlist(ctx context.Context, id int64) (model.Wishlist, error)
	UnarchiveWishlist(ctx context.Context, id int64) (model.Wishlist, error)
	SearchWishlists(ctx context.Context, name string) ([]model.Wishlist, error)

	CreateProduct(ctx context.Context, wishlistID int64, req model.ProductRequest) (model.Product, error)
	GetProduct(ctx context.Context, wishlistID, lineItemID int64) (model.Product, error)
	UpdateProduct(ctx context.Context, wishlistID, lineItemID int64, req model.ProductRequest) (model.Product, error)
	DeleteProduct(ctx context.Context, wishlistID, lineItemID int64) error
	SearchProducts(ctx context.Context, wishlistID int64, criteria restapi.ProductCriteria) ([]model.Product, error)
}

// Target is the form an operation reads from and writes back to.
type Target int

const (
	TargetWishlist Target = iota
	TargetProduct
)

func (t Target) String() string {
	if t == TargetProduct {
		return "product"
	}
	return "wishlist"
}

const (
	StatusSuccess         = "Success"
	StatusWishlistDeleted = "Wishlist has been Deleted!"
	StatusProductDeleted  = "Product has been Deleted!"
)

// ErrStale is returned by Do when the result was superseded before it could
// be applied.
var ErrStale = errors.New("response superseded by a later request")

// Status is the one-line message shown after every operation.
type Status struct {
	Text string
	Err  bool
}

type Session struct {
	api    API
	logger logrus.FieldLogger

	Wishlist *form.State
	Product  *form.ProductForm
	Status   Status

	generations [2]uint64
}

type Option func(*Session)

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(api API, opts ...Option) *Session {
	discard := logrus.New()
	discard.SetLevel(logrus.PanicLevel)
	s := &Session{
		api:      api,
		logger:   discard,
		Wishlist: &form.State{},
		Product:  &form.ProductForm{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Generation is the current request generation of t.
func (s *Session) Generation(t Target) uint64 { return s.generations[t] }

// Clear empties the form of t and invalidates its in-flight requests.
func (s *Session) Clear(t Target) {
	s.generations[t]++
	switch t {
	case TargetWishlist:
		s.Wishlist.Clear()
	case TargetProduct:
		s.Product.Clear()
	}
	s.Status = Status{}
}

// Request is one validated operation, ready to run.
type Request struct {
	Op         restapi.Op
	Target     Target
	Generation uint64

	call func(ctx context.Context) (any, error)
	done func(s *Session, data any)
}

// Result is the outcome of Request.Run. Data is the decoded payload: a
// model.Wishlist, []model.Wishlist, model.Product, []model.Product or nil.
type Result struct {
	Op         restapi.Op
	Target     Target
	Generation uint64
	Data       any
	Err        error

	done func(s *Session, data any)
}

// Run performs the network call. It never touches session state and is safe
// to call from any goroutine.
func (r *Request) Run(ctx context.Context) Result {
	data, err := r.call(ctx)
	return Result{
		Op:         r.Op,
		Target:     r.Target,
		Generation: r.Generation,
		Data:       data,
		Err:        err,
		done:       r.done,
	}
}

func (s *Session) issue(t Target, op restapi.Op, call func(ctx context.Context) (any, error), done func(*Session, any)) *Request {
	s.generations[t]++
	req := &Request{Op: op, Target: t, Generation: s.generations[t], call: call, done: done}
	s.logger.WithFields(logrus.Fields{"op": op, "generation": req.Generation}).Debug("issue request")
	return req
}

// invalid records a validation failure. No request is issued and the
// generation is left alone.
func (s *Session) invalid(op restapi.Op, err error) error {
	s.logger.WithFields(logrus.Fields{"op": op}).WithError(err).Debug("request not sent")
	s.Status = Status{Text: err.Error(), Err: true}
	return err
}

// Apply folds res into the session. It reports false, changing nothing, when
// res belongs to a superseded generation.
func (s *Session) Apply(res Result) bool {
	fields := logrus.Fields{"op": res.Op, "generation": res.Generation}
	if res.Generation != s.generations[res.Target] {
		fields["current"] = s.generations[res.Target]
		s.logger.WithFields(fields).Debug("discarding stale response")
		return false
	}
	if res.Err != nil {
		var ae *restapi.APIError
		if errors.As(res.Err, &ae) {
			fields["status"] = ae.Status
			s.logger.WithFields(fields).Warn(ae.Detail())
		} else {
			s.logger.WithFields(fields).WithError(res.Err).Warn("request failed")
		}
		s.fail(res)
		return true
	}
	s.logger.WithFields(fields).Debug("apply response")
	s.Status = Status{Text: StatusSuccess}
	if res.done != nil {
		res.done(s, res.Data)
	}
	return true
}

// fail applies the failure policy: a failed retrieve clears its form, a
// failed wishlist search clears the wishlist form, a failed product search
// only clears the results. Every other failure leaves the form as typed.
func (s *Session) fail(res Result) {
	switch res.Op {
	case restapi.OpGetWishlist, restapi.OpSearchWishlists:
		s.Wishlist.Clear()
	case restapi.OpGetProduct:
		s.Product.Clear()
	case restapi.OpSearchProducts:
		s.Product.ClearResults()
	}
	s.Status = Status{Text: res.Err.Error(), Err: true}
}

// Do runs one operation synchronously: build, run and apply. The returned
// error is the validation error, the request error or ErrStale.
func (s *Session) Do(ctx context.Context, build func() (*Request, error)) (Result, error) {
	req, err := build()
	if err != nil {
		return Result{}, err
	}
	res := req.Run(ctx)
	if !s.Apply(res) {
		return res, ErrStale
	}
	return res, res.Err
}
