// Package mockapi is an in-memory stand-in for the wishlist REST service. It
// implements the request/response contract the console consumes, with the
// service's validation messages, for tests and local demos.
package mockapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wishlist-console/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	store  *memStore
	logger logrus.FieldLogger
	router chi.Router
}

func NewServer(logger logrus.FieldLogger) *Server {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		logger = l
	}
	s := &Server{store: newMemStore(), logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// Seed stores w as if it had been created through the API and returns the
// stored copy.
func (s *Server) Seed(w model.Wishlist) model.Wishlist {
	req := model.WishlistRequest{Name: w.Name, UserID: w.UserID, Archived: w.Archived}
	for _, p := range w.Products {
		req.Products = append(req.Products, model.ProductRequest{ProductID: p.ProductID, Name: p.Name, Price: p.Price})
	}
	out, err := s.store.create(req)
	if err != nil {
		panic(err)
	}
	return out
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/wishlists", func(r chi.Router) {
		r.Get("/", s.handleSearchWishlists)
		r.Post("/", s.handleCreateWishlist)
		r.Route("/{wishlistID}", func(r chi.Router) {
			r.Get("/", s.handleGetWishlist)
			r.Put("/", s.handleUpdateWishlist)
			r.Delete("/", s.handleDeleteWishlist)
			r.Put("/archive", s.handleArchive(true))
			r.Put("/unarchive", s.handleArchive(false))
			r.Route("/products", func(r chi.Router) {
				r.Get("/", s.handleSearchProducts)
				r.Post("/", s.handleCreateProduct)
				r.Get("/{lineID}", s.handleGetProduct)
				r.Put("/{lineID}", s.handleUpdateProduct)
				r.Delete("/{lineID}", s.handleDeleteProduct)
			})
		})
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.RequestURI(),
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Debug("mock request")
	})
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.WithError(err).Error("failed to encode JSON response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]any{
		"status":  status,
		"error":   http.StatusText(status),
		"message": message,
	})
}

func pathInt(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s in path", name)
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (s *Server) wishlistID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathInt(r, "wishlistID")
	if err != nil {
		s.respondError(w, http.StatusNotFound, "Wishlist id must be an integer")
		return 0, false
	}
	return id, true
}

func (s *Server) lineID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathInt(r, "lineID")
	if err != nil {
		s.respondError(w, http.StatusNotFound, "Product id must be an integer")
		return 0, false
	}
	return id, true
}

func wishlistNotFound(id int64) string {
	return fmt.Sprintf("Wishlist with id '%d' was not found.", id)
}

func productNotFound(wishlistID, lineID int64) string {
	return fmt.Sprintf("Product with id '%d' could not be found in Wishlist '%d'.", lineID, wishlistID)
}

func requireJSON(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("Content-Type must be application/json")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Wishlists
// ---------------------------------------------------------------------------

func (s *Server) handleSearchWishlists(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.search(r.URL.Query().Get("wishlist_name")))
}

func (s *Server) handleCreateWishlist(w http.ResponseWriter, r *http.Request) {
	if err := requireJSON(r); err != nil {
		s.respondError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	req, err := decodeWishlist(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.store.create(req)
	if err != nil {
		s.respondError(w, http.StatusConflict, err.Error())
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/wishlists/%d", out.ID))
	s.respondJSON(w, http.StatusCreated, out)
}

func (s *Server) handleGetWishlist(w http.ResponseWriter, r *http.Request) {
	id, ok := s.wishlistID(w, r)
	if !ok {
		return
	}
	out, err := s.store.get(id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, wishlistNotFound(id))
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateWishlist(w http.ResponseWriter, r *http.Request) {
	id, ok := s.wishlistID(w, r)
	if !ok {
		return
	}
	if err := requireJSON(r); err != nil {
		s.respondError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	req, err := decodeWishlist(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.store.update(id, req)
	if err != nil {
		s.respondError(w, http.StatusNotFound, wishlistNotFound(id))
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteWishlist(w http.ResponseWriter, r *http.Request) {
	id, ok := s.wishlistID(w, r)
	if !ok {
		return
	}
	s.store.delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleArchive(archived bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.wishlistID(w, r)
		if !ok {
			return
		}
		out, err := s.store.setArchived(id, archived)
		if err != nil {
			s.respondError(w, http.StatusNotFound, wishlistNotFound(id))
			return
		}
		s.respondJSON(w, http.StatusOK, out)
	}
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

func (s *Server) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	wid, ok := s.wishlistID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	f := productFilter{name: strings.TrimSpace(q.Get("product_name"))}
	if raw := strings.TrimSpace(q.Get("product_id")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "product_id must be an integer")
			return
		}
		f.productID = &v
	}
	if raw := strings.TrimSpace(q.Get("product_price")); raw != "" {
		p, err := model.ParsePrice(raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "product_price must be numeric")
			return
		}
		f.price = &p
	}
	out, err := s.store.searchProducts(wid, f)
	if err != nil {
		s.respondError(w, http.StatusNotFound, wishlistNotFound(wid))
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	wid, ok := s.wishlistID(w, r)
	if !ok {
		return
	}
	if err := requireJSON(r); err != nil {
		s.respondError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	req, err := decodeProduct(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.store.addProduct(wid, req)
	if err != nil {
		s.respondError(w, http.StatusNotFound, wishlistNotFound(wid))
		return
	}
	s.respondJSON(w, http.StatusCreated, out)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	wid, ok := s.wishlistID(w, r)
	if !ok {
		return
	}
	lid, ok := s.lineID(w, r)
	if !ok {
		return
	}
	out, err := s.store.getProduct(wid, lid)
	if err != nil {
		s.respondError(w, http.StatusNotFound, productNotFound(wid, lid))
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	wid, ok := s.wishlistID(w, r)
	if !ok {
		return
	}
	lid, ok := s.lineID(w, r)
	if !ok {
		return
	}
	if err := requireJSON(r); err != nil {
		s.respondError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	req, err := decodeProduct(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.store.updateProduct(wid, lid, req)
	if err != nil {
		s.respondError(w, http.StatusNotFound, productNotFound(wid, lid))
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	wid, ok := s.wishlistID(w, r)
	if !ok {
		return
	}
	lid, ok := s.lineID(w, r)
	if !ok {
		return
	}
	s.store.deleteProduct(wid, lid)
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Body decoding
// ---------------------------------------------------------------------------

type wishlistBody struct {
	UserID   *int64        `json:"user_id"`
	Name     *string       `json:"wishlist_name"`
	Archived bool          `json:"archived"`
	Products []productBody `json:"wishlist_products"`
}

type productBody struct {
	WishlistID *int64       `json:"wishlist_id"`
	ProductID  *int64       `json:"product_id"`
	Name       *string      `json:"product_name"`
	Price      *model.Price `json:"product_price"`
}

var errBadBody = errors.New("body of request contained bad or no data")

func decodeWishlist(r *http.Request) (model.WishlistRequest, error) {
	var body wishlistBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return model.WishlistRequest{}, fmt.Errorf("Invalid Wishlist: %v - Error message: %v", errBadBody, err)
	}
	if body.UserID == nil {
		return model.WishlistRequest{}, errors.New("Invalid Wishlist: missing user_id")
	}
	if body.Name == nil {
		return model.WishlistRequest{}, errors.New("Invalid Wishlist: missing wishlist_name")
	}
	req := model.WishlistRequest{UserID: *body.UserID, Name: *body.Name, Archived: body.Archived}
	for _, pb := range body.Products {
		p, err := pb.validate()
		if err != nil {
			return model.WishlistRequest{}, err
		}
		req.Products = append(req.Products, p)
	}
	return req, nil
}

func decodeProduct(r *http.Request) (model.ProductRequest, error) {
	var body productBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return model.ProductRequest{}, fmt.Errorf("Invalid Product: %v - Error message: %v", errBadBody, err)
	}
	return body.validate()
}

func (b productBody) validate() (model.ProductRequest, error) {
	switch {
	case b.ProductID == nil:
		return model.ProductRequest{}, errors.New("Invalid Product: missing product_id")
	case b.Name == nil:
		return model.ProductRequest{}, errors.New("Invalid Product: missing product_name")
	case b.Price == nil:
		return model.ProductRequest{}, errors.New("Invalid Product: missing product_price")
	case b.Price.IsNegative():
		return model.ProductRequest{}, errors.New("Invalid Product: price must be strictly positive")
	}
	return model.ProductRequest{
		WishlistID: b.WishlistID,
		ProductID:  *b.ProductID,
		Name:       *b.Name,
		Price:      *b.Price,
	}, nil
}
