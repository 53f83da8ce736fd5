package restapi

import (
	"net/url"
	"strings"
)

// Param is one query-string parameter.
type Param struct {
	Key   string
	Value string
}

// BuildQuery joins the non-empty parameters with "&", in order. Empty values
// are skipped entirely and the result never starts with a separator.
func BuildQuery(params ...Param) string {
	var parts []string
	for _, p := range params {
		v := strings.TrimSpace(p.Value)
		if v == "" {
			continue
		}
		parts = append(parts, url.QueryEscape(p.Key)+"="+url.QueryEscape(v))
	}
	return strings.Join(parts, "&")
}

// ProductCriteria are the partial filters of a product search.
type ProductCriteria struct {
	Name      string
	ProductID string
	Price     string
}

func (c ProductCriteria) Query() string {
	return BuildQuery(
		Param{Key: "product_name", Value: c.Name},
		Param{Key: "product_id", Value: c.ProductID},
		Param{Key: "product_price", Value: c.Price},
	)
}

func wishlistSearchQuery(name string) string {
	return BuildQuery(Param{Key: "wishlist_name", Value: name})
}
