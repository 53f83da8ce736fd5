package form

import (
	"errors"
	"strconv"

	"wishlist-console/internal/model"
)

// RowKey identifies a row for its whole lifetime. Display numbers are derived
// from position and change when earlier rows are removed; keys never do.
type RowKey uint64

type RowField string

const (
	RowProductID RowField = "product_id"
	RowName      RowField = "product_name"
	RowPrice     RowField = "product_price"
)

var (
	ErrRowReadOnly = errors.New("row is read-only")
	ErrRowNotFound = errors.New("row not found")
)

// Row is one product line in the wishlist editor. Values are kept as typed so
// partially entered input survives until submit.
type Row struct {
	Key       RowKey
	Persisted bool

	// LineItemID is the server-assigned id; zero for pending rows.
	LineItemID int64

	ProductID string
	Name      string
	Price     string
}

func (r Row) Get(f RowField) string {
	switch f {
	case RowProductID:
		return r.ProductID
	case RowName:
		return r.Name
	case RowPrice:
		return r.Price
	}
	return ""
}

// Rows is the ordered, dynamically sized list of product rows nested in the
// wishlist form. The zero value is an empty list.
type Rows struct {
	rows    []Row
	lastKey RowKey
}

func (r *Rows) Len() int { return len(r.rows) }

// All returns a copy of the rows in insertion order.
func (r *Rows) All() []Row {
	out := make([]Row, len(r.rows))
	copy(out, r.rows)
	return out
}

// At returns the row with display number n (1-based).
func (r *Rows) At(n int) (Row, bool) {
	if n < 1 || n > len(r.rows) {
		return Row{}, false
	}
	return r.rows[n-1], true
}

// Number returns the display number of key, or 0 when it is not present.
func (r *Rows) Number(key RowKey) int {
	if i := r.index(key); i >= 0 {
		return i + 1
	}
	return 0
}

func (r *Rows) Get(key RowKey) (Row, bool) {
	i := r.index(key)
	if i < 0 {
		return Row{}, false
	}
	return r.rows[i], true
}

// AppendBlank adds an empty, editable row at the end.
func (r *Rows) AppendBlank() Row {
	r.lastKey++
	row := Row{Key: r.lastKey}
	r.rows = append(r.rows, row)
	return row
}

// AppendPersisted adds a read-only row holding values confirmed by the server.
func (r *Rows) AppendPersisted(p model.Product) Row {
	r.lastKey++
	row := Row{
		Key:        r.lastKey,
		Persisted:  true,
		LineItemID: p.ID,
		ProductID:  strconv.FormatInt(p.ProductID, 10),
		Name:       p.Name,
		Price:      p.Price.String(),
	}
	r.rows = append(r.rows, row)
	return row
}

// Remove deletes the row with key. Rows after it move up one position.
func (r *Rows) Remove(key RowKey) bool {
	i := r.index(key)
	if i < 0 {
		return false
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return true
}

// RemoveAt deletes the row with display number n.
func (r *Rows) RemoveAt(n int) bool {
	row, ok := r.At(n)
	if !ok {
		return false
	}
	return r.Remove(row.Key)
}

// SetField updates one value of a pending row.
func (r *Rows) SetField(key RowKey, f RowField, value string) error {
	i := r.index(key)
	if i < 0 {
		return ErrRowNotFound
	}
	if r.rows[i].Persisted {
		return ErrRowReadOnly
	}
	switch f {
	case RowProductID:
		r.rows[i].ProductID = value
	case RowName:
		r.rows[i].Name = value
	case RowPrice:
		r.rows[i].Price = value
	default:
		return &FieldError{Field: string(f), Reason: "is not a row field"}
	}
	return nil
}

// Pending returns the rows not yet saved, in order.
func (r *Rows) Pending() []Row {
	var out []Row
	for _, row := range r.rows {
		if !row.Persisted {
			out = append(out, row)
		}
	}
	return out
}

func (r *Rows) Reset() {
	r.rows = nil
}

func (r *Rows) index(key RowKey) int {
	for i := range r.rows {
		if r.rows[i].Key == key {
			return i
		}
	}
	return -1
}
