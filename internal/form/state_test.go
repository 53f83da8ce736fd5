package form

import (
	"errors"
	"testing"

	"wishlist-console/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleWishlist() model.Wishlist {
	return model.Wishlist{
		ID:       4,
		UserID:   9,
		Name:     "Kitchen",
		Archived: true,
		Products: []model.Product{
			{ID: 11, WishlistID: 4, ProductID: 100, Name: "Kettle", Price: model.MustPrice("35.00")},
			{ID: 12, WishlistID: 4, ProductID: 101, Name: "Toaster", Price: model.MustPrice("20")},
		},
	}
}

func TestState_LoadMarksEveryRowPersisted(t *testing.T) {
	var s State
	s.Results = []model.Wishlist{{ID: 1}}
	s.Load(sampleWishlist())

	require.Equal(t, "4", s.WishlistID)
	require.Equal(t, "9", s.UserID)
	require.Equal(t, "Kitchen", s.Name)
	require.True(t, s.Archived)
	require.Nil(t, s.Results)

	rows := s.Rows.All()
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.True(t, r.Persisted)
	}
	require.Equal(t, "Kettle", rows[0].Name)
	require.Equal(t, "Toaster", rows[1].Name)
	require.Equal(t, int64(12), rows[1].LineItemID)
}

func TestState_ClearResetsArchivedToFalse(t *testing.T) {
	var s State
	s.Load(sampleWishlist())
	s.Rows.AppendBlank()
	s.Clear()

	require.Equal(t, "", s.WishlistID)
	require.Equal(t, "", s.UserID)
	require.Equal(t, "", s.Name)
	require.False(t, s.Archived)
	require.Equal(t, "false", s.Get(FieldArchived))
	require.Equal(t, 0, s.Rows.Len())
	require.Equal(t, "", s.LoadedID())
}

func TestState_CollectForUpdateReturnsOnlyPendingRows(t *testing.T) {
	var s State
	s.Load(sampleWishlist())
	row := s.Rows.AppendBlank()
	require.NoError(t, s.Rows.SetField(row.Key, RowProductID, "300"))
	require.NoError(t, s.Rows.SetField(row.Key, RowName, "Mug"))
	require.NoError(t, s.Rows.SetField(row.Key, RowPrice, "9.99"))

	got, err := s.CollectForSubmit(ModeUpdate)
	require.NoError(t, err)

	want := []model.ProductRequest{{
		WishlistID: model.Int64(4),
		ProductID:  300,
		Name:       "Mug",
		Price:      model.MustPrice("9.99"),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected pending rows (-want +got):\n%s", diff)
	}
}

func TestState_CollectForCreateLeavesWishlistIDUnset(t *testing.T) {
	var s State
	for _, name := range []string{"a", "b", "c"} {
		row := s.Rows.AppendBlank()
		require.NoError(t, s.Rows.SetField(row.Key, RowProductID, "1"))
		require.NoError(t, s.Rows.SetField(row.Key, RowName, name))
		require.NoError(t, s.Rows.SetField(row.Key, RowPrice, "2"))
	}
	got, err := s.CollectForSubmit(ModeCreate)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, p := range got {
		require.Nil(t, p.WishlistID)
	}
}

func TestState_CreateRoundTripKeepsProductCount(t *testing.T) {
	var s State
	s.UserID = "5"
	s.Name = "Birthday"
	for i := 0; i < 3; i++ {
		row := s.Rows.AppendBlank()
		require.NoError(t, s.Rows.SetField(row.Key, RowProductID, "7"))
		require.NoError(t, s.Rows.SetField(row.Key, RowName, "Gift"))
		require.NoError(t, s.Rows.SetField(row.Key, RowPrice, "1.5"))
	}
	before := s.Rows.Len()

	req, err := s.Wishlist(ModeCreate)
	require.NoError(t, err)

	echo := model.Wishlist{ID: 1, UserID: req.UserID, Name: req.Name, Archived: req.Archived}
	for i, p := range req.Products {
		echo.Products = append(echo.Products, model.Product{ID: int64(i + 1), WishlistID: 1, ProductID: p.ProductID, Name: p.Name, Price: p.Price})
	}
	s.Load(echo)

	require.Equal(t, before, s.Rows.Len())
	require.Empty(t, s.Rows.Pending())
}

func TestState_InvalidRowReportsRowNumber(t *testing.T) {
	var s State
	s.UserID = "1"
	ok := s.Rows.AppendBlank()
	require.NoError(t, s.Rows.SetField(ok.Key, RowProductID, "1"))
	require.NoError(t, s.Rows.SetField(ok.Key, RowName, "a"))
	require.NoError(t, s.Rows.SetField(ok.Key, RowPrice, "1"))
	bad := s.Rows.AppendBlank()
	require.NoError(t, s.Rows.SetField(bad.Key, RowProductID, "1"))
	require.NoError(t, s.Rows.SetField(bad.Key, RowName, "b"))
	require.NoError(t, s.Rows.SetField(bad.Key, RowPrice, "cheap"))

	_, err := s.Wishlist(ModeCreate)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, "row 2 product_price", fe.Field)
	require.ErrorIs(t, err, ErrNotNumber)
}

func TestState_UpdateRequiresLoadedWishlist(t *testing.T) {
	var s State
	s.UserID = "1"
	_, err := s.Wishlist(ModeUpdate)
	require.ErrorIs(t, err, ErrRequired)

	s.Load(sampleWishlist())
	s.WishlistID = "5"
	_, err = s.Wishlist(ModeUpdate)
	require.ErrorIs(t, err, ErrNotLoaded)

	s.WishlistID = "4"
	req, err := s.Wishlist(ModeUpdate)
	require.NoError(t, err)
	require.Equal(t, int64(4), *req.WishlistID)
	require.NotNil(t, req.Products)
	require.Empty(t, req.Products)
}

func TestState_NonNumericUserIDIsRejected(t *testing.T) {
	var s State
	s.UserID = "five"
	_, err := s.Wishlist(ModeCreate)
	require.ErrorIs(t, err, ErrNotNumber)
	require.EqualError(t, err, "user_id must be a number")
}

func TestState_PromoteKeepsResultsAndLoadsFirst(t *testing.T) {
	var s State
	list := []model.Wishlist{sampleWishlist(), {ID: 8, UserID: 2, Name: "Garden"}, {ID: 9, UserID: 3, Name: "Books"}}
	require.True(t, s.Promote(list))
	require.Len(t, s.Results, 3)
	require.Equal(t, "4", s.WishlistID)
	require.Equal(t, "Kitchen", s.Name)
	require.Equal(t, 2, s.Rows.Len())

	before := s
	require.False(t, s.Promote(nil))
	require.Empty(t, s.Results)
	require.Equal(t, before.WishlistID, s.WishlistID)
	require.Equal(t, before.Name, s.Name)
}

func TestState_SetArchivedParsesBool(t *testing.T) {
	var s State
	require.NoError(t, s.Set(FieldArchived, "true"))
	require.True(t, s.Archived)
	require.Error(t, s.Set(FieldArchived, "maybe"))
	require.True(t, s.Archived)
}

func TestState_CreateRejectsLoadedWishlist(t *testing.T) {
	var s State
	s.Load(sampleWishlist())
	s.Name = "Kitchen copy"

	_, err := s.Wishlist(ModeCreate)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, string(FieldWishlistID), fe.Field)
	require.ErrorIs(t, err, ErrSaved)

	// Blanking the id does not forget the loaded wishlist.
	s.WishlistID = ""
	_, err = s.Wishlist(ModeCreate)
	require.ErrorIs(t, err, ErrSaved)

	s.Clear()
	s.UserID = "9"
	s.Name = "Kitchen copy"
	req, err := s.Wishlist(ModeCreate)
	require.NoError(t, err)
	require.Empty(t, req.Products)
}

func TestState_CollectForCreateRejectsPersistedRows(t *testing.T) {
	var s State
	for _, p := range sampleWishlist().Products {
		s.Rows.AppendPersisted(p)
	}
	row := s.Rows.AppendBlank()
	require.NoError(t, s.Rows.SetField(row.Key, RowProductID, "7"))
	require.NoError(t, s.Rows.SetField(row.Key, RowName, "Mug"))
	require.NoError(t, s.Rows.SetField(row.Key, RowPrice, "3"))

	_, err := s.CollectForSubmit(ModeCreate)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, "row 1", fe.Field)
	require.ErrorIs(t, err, ErrSaved)
}

func TestState_IDOverflowIsNotANumber(t *testing.T) {
	s := State{WishlistID: "99999999999999999999"}
	_, err := s.ID()
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldError, got %T: %v", err, err)
	}
	require.ErrorIs(t, err, ErrNotNumber)
	require.EqualError(t, err, "wishlist_id must be a number")
}
