package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"wishlist-console/internal/mockapi"
	"wishlist-console/internal/model"

	"github.com/stretchr/testify/require"
)

type captured struct {
	method      string
	path        string
	query       string
	contentType string
	body        []byte
}

func recordingServer(t *testing.T, status int, reply string) (*Client, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.contentType = r.Header.Get("Content-Type")
		got.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL + "/")
	require.NoError(t, err)
	return c, got
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("  ")
	require.ErrorIs(t, err, errBaseURLRequired)

	c, err := NewClient("http://example.test///")
	require.NoError(t, err)
	require.Equal(t, "http://example.test", c.BaseURL())
}

func TestCreateWishlistSendsContract(t *testing.T) {
	c, got := recordingServer(t, http.StatusCreated,
		`{"id":1,"user_id":5,"wishlist_name":"Birthday","archived":false,"wishlist_products":[]}`)

	out, err := c.CreateWishlist(context.Background(), model.WishlistRequest{
		Name:     "Birthday",
		UserID:   5,
		Products: []model.ProductRequest{{ProductID: 10, Name: "Mug", Price: model.MustPrice("9.99")}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), out.ID)

	require.Equal(t, http.MethodPost, got.method)
	require.Equal(t, "/wishlists", got.path)
	require.Equal(t, "application/json", got.contentType)

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.body, &body))
	require.Equal(t, "Birthday", body["wishlist_name"])
	require.NotContains(t, body, "wishlist_id")
	products := body["wishlist_products"].([]any)
	require.Len(t, products, 1)
	p := products[0].(map[string]any)
	require.Contains(t, p, "wishlist_id")
	require.Nil(t, p["wishlist_id"])
	require.Equal(t, 9.99, p["product_price"])
}

func TestArchiveSendsNoBody(t *testing.T) {
	c, got := recordingServer(t, http.StatusOK,
		`{"id":1,"user_id":5,"wishlist_name":"Birthday","archived":true,"wishlist_products":[]}`)

	out, err := c.ArchiveWishlist(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, out.Archived)
	require.Equal(t, http.MethodPut, got.method)
	require.Equal(t, "/wishlists/1/archive", got.path)
	require.Empty(t, got.body)
}

func TestDeleteAcceptsEmptyBody(t *testing.T) {
	c, got := recordingServer(t, http.StatusNoContent, "")
	require.NoError(t, c.DeleteProduct(context.Background(), 3, 9))
	require.Equal(t, http.MethodDelete, got.method)
	require.Equal(t, "/wishlists/3/products/9", got.path)
}

func TestSearchProductsQuery(t *testing.T) {
	c, got := recordingServer(t, http.StatusOK, `[]`)
	out, err := c.SearchProducts(context.Background(), 2, ProductCriteria{ProductID: "7", Price: "2.5"})
	require.NoError(t, err)
	require.Empty(t, out)
	require.Equal(t, "/wishlists/2/products", got.path)
	require.Equal(t, "product_id=7&product_price=2.5", got.query)
}

func TestSearchWishlistsWithoutName(t *testing.T) {
	c, got := recordingServer(t, http.StatusOK, `[]`)
	_, err := c.SearchWishlists(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "", got.query)
}

func TestFailureMessage(t *testing.T) {
	cases := []struct {
		name   string
		status int
		reply  string
		want   string
	}{
		{"server message", http.StatusNotFound, `{"message":"Wishlist with id '4' was not found."}`, "Wishlist with id '4' was not found."},
		{"blank message", http.StatusBadRequest, `{"message":"  "}`, GenericMessage},
		{"not json", http.StatusInternalServerError, `<html>oops</html>`, GenericMessage},
		{"empty", http.StatusBadGateway, ``, GenericMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := recordingServer(t, tc.status, tc.reply)
			_, err := c.GetWishlist(context.Background(), 4)
			require.Error(t, err)
			require.Equal(t, tc.want, err.Error())
			var ae *APIError
			require.True(t, errors.As(err, &ae))
			require.Equal(t, tc.status, ae.Status)
			require.Equal(t, OpGetWishlist, ae.Op)
		})
	}
}

func TestTransportFailureUsesGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	require.NoError(t, err)
	_, err = c.GetWishlist(context.Background(), 1)
	require.EqualError(t, err, GenericMessage)
	var ae *APIError
	require.True(t, errors.As(err, &ae))
	require.Zero(t, ae.Status)
	require.NotNil(t, ae.Err)
}

func TestObserverSeesEveryRequest(t *testing.T) {
	var recs []Record
	srv := httptest.NewServer(mockapi.NewServer(nil).Handler())
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, WithObserver(ObserverFunc(func(_ context.Context, rec Record) {
		recs = append(recs, rec)
	})))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = c.GetWishlist(ctx, 99)
	require.True(t, IsNotFound(err))
	_, err = c.CreateWishlist(ctx, model.WishlistRequest{Name: "x", UserID: 1})
	require.NoError(t, err)

	require.Len(t, recs, 2)
	require.Equal(t, OpGetWishlist, recs[0].Op)
	require.Equal(t, http.StatusNotFound, recs[0].Status)
	require.False(t, recs[0].OK())
	require.Equal(t, OpCreateWishlist, recs[1].Op)
	require.Equal(t, http.StatusCreated, recs[1].Status)
	require.True(t, recs[1].OK())
}

func TestProductLifecycleAgainstStandIn(t *testing.T) {
	srv := httptest.NewServer(mockapi.NewServer(nil).Handler())
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	w, err := c.CreateWishlist(ctx, model.WishlistRequest{Name: "Home", UserID: 2})
	require.NoError(t, err)

	p, err := c.CreateProduct(ctx, w.ID, model.ProductRequest{
		WishlistID: model.Int64(w.ID), ProductID: 10, Name: "Mug", Price: model.MustPrice("9.99"),
	})
	require.NoError(t, err)
	require.Equal(t, w.ID, p.WishlistID)
	require.NotZero(t, p.ID)

	p, err = c.UpdateProduct(ctx, w.ID, p.ID, model.ProductRequest{
		ID: model.Int64(p.ID), WishlistID: model.Int64(w.ID), ProductID: 10, Name: "Big Mug", Price: model.MustPrice("12"),
	})
	require.NoError(t, err)
	require.Equal(t, "Big Mug", p.Name)

	found, err := c.SearchProducts(ctx, w.ID, ProductCriteria{Name: "mug"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	require.NoError(t, c.DeleteProduct(ctx, w.ID, p.ID))
	_, err = c.GetProduct(ctx, w.ID, p.ID)
	require.True(t, IsNotFound(err))
}
