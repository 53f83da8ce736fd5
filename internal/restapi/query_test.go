package restapi

import "testing"

func TestBuildQuery(t *testing.T) {
	cases := []struct {
		name string
		in   ProductCriteria
		want string
	}{
		{"none", ProductCriteria{}, ""},
		{"id and price", ProductCriteria{ProductID: "7", Price: "2.5"}, "product_id=7&product_price=2.5"},
		{"price only", ProductCriteria{Price: "3"}, "product_price=3"},
		{"all", ProductCriteria{Name: "Mug", ProductID: "1", Price: "2"}, "product_name=Mug&product_id=1&product_price=2"},
		{"blank name", ProductCriteria{Name: "   ", ProductID: "1"}, "product_id=1"},
		{"escaped", ProductCriteria{Name: "tea & mug"}, "product_name=tea+%26+mug"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Query(); got != tc.want {
				t.Fatalf("Query() = %q, want %q", got, tc.want)
			}
		})
	}
}
