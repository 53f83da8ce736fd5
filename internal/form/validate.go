package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrRequired  = errors.New("is required")
	ErrNotNumber = errors.New("must be a number")
)

// FieldError is a client-side validation failure. No request is issued when
// one is returned.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	reason := e.Reason
	if reason == "" && e.Err != nil {
		reason = e.Err.Error()
	}
	return fmt.Sprintf("%s %s", e.Field, reason)
}

func (e *FieldError) Unwrap() error { return e.Err }

func required(field string) *FieldError {
	return &FieldError{Field: field, Err: ErrRequired}
}

func notNumber(field string) *FieldError {
	return &FieldError{Field: field, Err: ErrNotNumber}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// check validates v and reports the first failing field as a *FieldError.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return required(fe.Field())
		case "number", "numeric":
			return notNumber(fe.Field())
		}
		return &FieldError{Field: fe.Field(), Reason: "is invalid"}
	}
	return err
}

type wishlistRef struct {
	WishlistID string `json:"wishlist_id" validate:"required,number"`
}

type wishlistInput struct {
	UserID string `json:"user_id" validate:"required,number"`
}

type rowInput struct {
	ProductID string `json:"product_id" validate:"required,number"`
	Name      string `json:"product_name" validate:"required"`
	Price     string `json:"product_price" validate:"required,numeric"`
}

type productRef struct {
	WishlistID string `json:"wishlist_id" validate:"required,number"`
	LineItemID string `json:"id" validate:"required,number"`
}

type productInput struct {
	WishlistID string `json:"wishlist_id" validate:"required,number"`
	ProductID  string `json:"product_id" validate:"required,number"`
	Name       string `json:"product_name" validate:"required"`
	Price      string `json:"product_price" validate:"required,numeric"`
}
