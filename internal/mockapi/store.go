package mockapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"wishlist-console/internal/model"
)

var errNotFound = errors.New("not found")

// memStore keeps wishlists and their line items in memory. Line item ids are
// unique across wishlists.
type memStore struct {
	mu        sync.Mutex
	wishlists map[int64]*model.Wishlist
	nextWish  int64
	nextLine  int64
}

func newMemStore() *memStore {
	return &memStore{wishlists: map[int64]*model.Wishlist{}}
}

func cloneWishlist(w *model.Wishlist) model.Wishlist {
	out := *w
	out.Products = append([]model.Product{}, w.Products...)
	return out
}

func (s *memStore) create(req model.WishlistRequest) (model.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.wishlists {
		if w.Name == req.Name {
			return model.Wishlist{}, fmt.Errorf("Wishlist with name '%s' already exists.", req.Name)
		}
	}
	s.nextWish++
	w := &model.Wishlist{
		ID:       s.nextWish,
		UserID:   req.UserID,
		Name:     req.Name,
		Archived: req.Archived,
		Products: []model.Product{},
	}
	for _, p := range req.Products {
		w.Products = append(w.Products, s.newLine(w.ID, p))
	}
	s.wishlists[w.ID] = w
	return cloneWishlist(w), nil
}

func (s *memStore) newLine(wishlistID int64, p model.ProductRequest) model.Product {
	s.nextLine++
	return model.Product{
		ID:         s.nextLine,
		WishlistID: wishlistID,
		ProductID:  p.ProductID,
		Name:       p.Name,
		Price:      p.Price,
	}
}

func (s *memStore) get(id int64) (model.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wishlists[id]
	if !ok {
		return model.Wishlist{}, errNotFound
	}
	return cloneWishlist(w), nil
}

// update replaces the top-level fields and appends the submitted products as
// new line items.
func (s *memStore) update(id int64, req model.WishlistRequest) (model.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wishlists[id]
	if !ok {
		return model.Wishlist{}, errNotFound
	}
	w.Name = req.Name
	w.UserID = req.UserID
	w.Archived = req.Archived
	for _, p := range req.Products {
		w.Products = append(w.Products, s.newLine(w.ID, p))
	}
	return cloneWishlist(w), nil
}

func (s *memStore) delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists, id)
}

func (s *memStore) setArchived(id int64, archived bool) (model.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wishlists[id]
	if !ok {
		return model.Wishlist{}, errNotFound
	}
	w.Archived = archived
	return cloneWishlist(w), nil
}

// search matches wishlist names case-insensitively by substring.
func (s *memStore) search(name string) []model.Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(strings.TrimSpace(name))
	out := []model.Wishlist{}
	for _, w := range s.wishlists {
		if needle == "" || strings.Contains(strings.ToLower(w.Name), needle) {
			out = append(out, cloneWishlist(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) addProduct(wishlistID int64, req model.ProductRequest) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wishlists[wishlistID]
	if !ok {
		return model.Product{}, errNotFound
	}
	p := s.newLine(wishlistID, req)
	w.Products = append(w.Products, p)
	return p, nil
}

func (s *memStore) product(wishlistID, lineID int64) (*model.Wishlist, int, error) {
	w, ok := s.wishlists[wishlistID]
	if !ok {
		return nil, -1, errNotFound
	}
	for i := range w.Products {
		if w.Products[i].ID == lineID {
			return w, i, nil
		}
	}
	return w, -1, errNotFound
}

func (s *memStore) getProduct(wishlistID, lineID int64) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, i, err := s.product(wishlistID, lineID)
	if err != nil {
		return model.Product{}, err
	}
	return w.Products[i], nil
}

func (s *memStore) updateProduct(wishlistID, lineID int64, req model.ProductRequest) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, i, err := s.product(wishlistID, lineID)
	if err != nil {
		return model.Product{}, err
	}
	p := &w.Products[i]
	p.ProductID = req.ProductID
	p.Name = req.Name
	p.Price = req.Price
	return *p, nil
}

func (s *memStore) deleteProduct(wishlistID, lineID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, i, err := s.product(wishlistID, lineID)
	if err != nil {
		return
	}
	w.Products = append(w.Products[:i], w.Products[i+1:]...)
}

type productFilter struct {
	name      string
	productID *int64
	price     *model.Price
}

func (f productFilter) match(p model.Product) bool {
	if f.name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.name)) {
		return false
	}
	if f.productID != nil && p.ProductID != *f.productID {
		return false
	}
	if f.price != nil && !p.Price.Equal(*f.price) {
		return false
	}
	return true
}

func (s *memStore) searchProducts(wishlistID int64, f productFilter) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wishlists[wishlistID]
	if !ok {
		return nil, errNotFound
	}
	out := []model.Product{}
	for _, p := range w.Products {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
