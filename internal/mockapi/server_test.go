package mockapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wishlist-console/internal/model"

	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestCreateAndRetrieve(t *testing.T) {
	h := NewServer(nil).Handler()
	rec := do(t, h, http.MethodPost, "/wishlists",
		`{"wishlist_name":"Birthday","user_id":5,"archived":false,"wishlist_products":[{"wishlist_id":null,"product_id":10,"product_name":"Mug","product_price":9.99}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var w model.Wishlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
	require.Equal(t, int64(1), w.ID)
	require.Len(t, w.Products, 1)
	require.Equal(t, w.ID, w.Products[0].WishlistID)

	rec = do(t, h, http.MethodGet, "/wishlists/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDuplicateName(t *testing.T) {
	s := NewServer(nil)
	s.Seed(model.Wishlist{Name: "Birthday", UserID: 5})
	rec := do(t, s.Handler(), http.MethodPost, "/wishlists", `{"wishlist_name":"Birthday","user_id":6}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Wishlist with name 'Birthday' already exists.", message(t, rec))
}

func TestValidationMessages(t *testing.T) {
	s := NewServer(nil)
	w := s.Seed(model.Wishlist{Name: "Home", UserID: 1})
	h := s.Handler()
	path := "/wishlists/" + jsonInt(w.ID) + "/products"

	cases := []struct {
		body string
		want string
	}{
		{`{"product_name":"Mug","product_price":1}`, "Invalid Product: missing product_id"},
		{`{"product_id":1,"product_price":1}`, "Invalid Product: missing product_name"},
		{`{"product_id":1,"product_name":"Mug"}`, "Invalid Product: missing product_price"},
		{`{"product_id":1,"product_name":"Mug","product_price":-2}`, "Invalid Product: price must be strictly positive"},
	}
	for _, tc := range cases {
		rec := do(t, h, http.MethodPost, path, tc.body)
		require.Equal(t, http.StatusBadRequest, rec.Code, tc.body)
		require.Equal(t, tc.want, message(t, rec))
	}

	rec := do(t, h, http.MethodPost, "/wishlists", `{"wishlist_name":"x"}`)
	require.Equal(t, "Invalid Wishlist: missing user_id", message(t, rec))
}

func TestArchiveAndMissing(t *testing.T) {
	s := NewServer(nil)
	w := s.Seed(model.Wishlist{Name: "Home", UserID: 1})
	h := s.Handler()

	rec := do(t, h, http.MethodPut, "/wishlists/"+jsonInt(w.ID)+"/archive", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out model.Wishlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.True(t, out.Archived)

	rec = do(t, h, http.MethodPut, "/wishlists/42/unarchive", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Wishlist with id '42' was not found.", message(t, rec))
}

func TestSearch(t *testing.T) {
	s := NewServer(nil)
	s.Seed(model.Wishlist{Name: "Birthday", UserID: 1})
	s.Seed(model.Wishlist{Name: "Home office", UserID: 1})
	s.Seed(model.Wishlist{Name: "Birthday 2", UserID: 2, Products: []model.Product{
		{ProductID: 7, Name: "Kettle", Price: model.MustPrice("2.5")},
		{ProductID: 8, Name: "Tea", Price: model.MustPrice("3")},
	}})
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/wishlists?wishlist_name=birth", "")
	var ws []model.Wishlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ws))
	require.Len(t, ws, 2)
	require.Equal(t, "Birthday", ws[0].Name)

	rec = do(t, h, http.MethodGet, "/wishlists/3/products?product_id=7&product_price=2.5", "")
	var ps []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ps))
	require.Len(t, ps, 1)
	require.Equal(t, "Kettle", ps[0].Name)

	rec = do(t, h, http.MethodGet, "/wishlists/3/products?product_price=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteIsIdempotent(t *testing.T) {
	h := NewServer(nil).Handler()
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/wishlists/9", "").Code)
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/wishlists/9/products/1", "").Code)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
