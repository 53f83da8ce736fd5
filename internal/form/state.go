package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wishlist-console/internal/model"
)

type Mode int

const (
	ModeCreate Mode = iota + 1
	ModeUpdate
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	}
	return "unknown"
}

type Field string

const (
	FieldWishlistID   Field = "wishlist_id"
	FieldUserID       Field = "user_id"
	FieldWishlistName Field = "wishlist_name"
	FieldArchived     Field = "archived"
)

// ErrNotLoaded is returned when an update targets a wishlist other than the
// one last loaded into the form.
var ErrNotLoaded = errors.New("does not match the loaded wishlist; retrieve it first")

// ErrSaved is returned when a create would resend a wishlist or row that
// already exists on the server.
var ErrSaved = errors.New("is already saved; clear the form to create a new wishlist")

// State is the wishlist currently being edited: the top-level fields, the
// nested product rows and the last wishlist search results.
//
// State holds plain values only. Views bind to it and re-render from it.
type State struct {
	WishlistID string
	UserID     string
	Name       string
	Archived   bool

	Rows Rows

	// Results is the last wishlist search result. Empty renders as a
	// header-only table.
	Results []model.Wishlist

	loadedID string
}

// Load replaces every field with w and rebuilds the rows as persisted rows in
// the order received. Prior search results are cleared.
func (s *State) Load(w model.Wishlist) {
	s.replace(w)
	s.Results = nil
}

// Promote shows list as the search result and loads its first entry, keeping
// the results. It reports whether anything was loaded.
func (s *State) Promote(list []model.Wishlist) bool {
	s.Results = append([]model.Wishlist(nil), list...)
	if len(list) == 0 {
		return false
	}
	s.replace(list[0])
	return true
}

func (s *State) replace(w model.Wishlist) {
	s.WishlistID = formatID(w.ID)
	s.UserID = strconv.FormatInt(w.UserID, 10)
	s.Name = w.Name
	s.Archived = w.Archived
	s.Rows.Reset()
	for _, p := range w.Products {
		s.Rows.AppendPersisted(p)
	}
	s.loadedID = s.WishlistID
}

// Clear resets every field to its empty default.
func (s *State) Clear() {
	s.WishlistID = ""
	s.UserID = ""
	s.Name = ""
	s.Archived = false
	s.Rows.Reset()
	s.Results = nil
	s.loadedID = ""
}

// LoadedID is the id of the wishlist last loaded from the server.
func (s *State) LoadedID() string { return s.loadedID }

func (s *State) Get(f Field) string {
	switch f {
	case FieldWishlistID:
		return s.WishlistID
	case FieldUserID:
		return s.UserID
	case FieldWishlistName:
		return s.Name
	case FieldArchived:
		return strconv.FormatBool(s.Archived)
	}
	return ""
}

func (s *State) Set(f Field, value string) error {
	switch f {
	case FieldWishlistID:
		s.WishlistID = value
	case FieldUserID:
		s.UserID = value
	case FieldWishlistName:
		s.Name = value
	case FieldArchived:
		v, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return &FieldError{Field: string(f), Reason: "must be true or false"}
		}
		s.Archived = v
	default:
		return &FieldError{Field: string(f), Reason: "is not a wishlist field"}
	}
	return nil
}

// ID parses the wishlist id field.
func (s *State) ID() (int64, error) {
	id := strings.TrimSpace(s.WishlistID)
	if err := check(wishlistRef{WishlistID: id}); err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, notNumber(string(FieldWishlistID))
	}
	return n, nil
}

// CollectForSubmit returns the rows to send as new products.
//
// ModeCreate sends every row with the wishlist id unset and rejects rows
// that are already persisted. ModeUpdate sends only pending rows, tagged with
// the current wishlist id; persisted rows are never re-created.
func (s *State) CollectForSubmit(mode Mode) ([]model.ProductRequest, error) {
	var (
		rows []Row
		wid  *int64
	)
	switch mode {
	case ModeCreate:
		rows = s.Rows.All()
		for _, row := range rows {
			if row.Persisted {
				return nil, &FieldError{Field: fmt.Sprintf("row %d", s.Rows.Number(row.Key)), Err: ErrSaved}
			}
		}
	case ModeUpdate:
		id, err := s.ID()
		if err != nil {
			return nil, err
		}
		wid = model.Int64(id)
		rows = s.Rows.Pending()
	default:
		return nil, fmt.Errorf("collect rows: unknown mode %d", mode)
	}

	out := make([]model.ProductRequest, 0, len(rows))
	for _, row := range rows {
		req, err := rowRequest(row, wid)
		if err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				fe.Field = fmt.Sprintf("row %d %s", s.Rows.Number(row.Key), fe.Field)
			}
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

// Wishlist builds the request body for mode.
func (s *State) Wishlist(mode Mode) (model.WishlistRequest, error) {
	req := model.WishlistRequest{
		Name:     strings.TrimSpace(s.Name),
		Archived: s.Archived,
	}
	switch mode {
	case ModeCreate:
		if strings.TrimSpace(s.WishlistID) != "" || s.loadedID != "" {
			return model.WishlistRequest{}, &FieldError{Field: string(FieldWishlistID), Err: ErrSaved}
		}
	case ModeUpdate:
		id, err := s.ID()
		if err != nil {
			return model.WishlistRequest{}, err
		}
		if strings.TrimSpace(s.WishlistID) != s.loadedID {
			return model.WishlistRequest{}, &FieldError{Field: string(FieldWishlistID), Err: ErrNotLoaded}
		}
		req.WishlistID = model.Int64(id)
	}

	userID := strings.TrimSpace(s.UserID)
	if err := check(wishlistInput{UserID: userID}); err != nil {
		return model.WishlistRequest{}, err
	}
	uid, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return model.WishlistRequest{}, notNumber(string(FieldUserID))
	}
	req.UserID = uid

	products, err := s.CollectForSubmit(mode)
	if err != nil {
		return model.WishlistRequest{}, err
	}
	req.Products = products
	return req, nil
}

func rowRequest(row Row, wid *int64) (model.ProductRequest, error) {
	in := rowInput{
		ProductID: strings.TrimSpace(row.ProductID),
		Name:      strings.TrimSpace(row.Name),
		Price:     strings.TrimSpace(row.Price),
	}
	if err := check(in); err != nil {
		return model.ProductRequest{}, err
	}
	pid, err := strconv.ParseInt(in.ProductID, 10, 64)
	if err != nil {
		return model.ProductRequest{}, notNumber(string(RowProductID))
	}
	price, err := model.ParsePrice(in.Price)
	if err != nil {
		return model.ProductRequest{}, notNumber(string(RowPrice))
	}
	return model.ProductRequest{
		WishlistID: wid,
		ProductID:  pid,
		Name:       in.Name,
		Price:      price,
	}, nil
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
