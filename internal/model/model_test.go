package model

import (
	"encoding/json"
	"testing"
)

func TestPriceJSON(t *testing.T) {
	b, err := json.Marshal(ProductRequest{ProductID: 10, Name: "Mug", Price: MustPrice("9.90")})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"wishlist_id":null,"product_id":10,"product_name":"Mug","product_price":9.9}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}

	for _, in := range []string{`{"product_price":2.50}`, `{"product_price":"2.5"}`} {
		var p Product
		if err := json.Unmarshal([]byte(in), &p); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if !p.Price.Equal(MustPrice("2.5")) {
			t.Fatalf("%s: price = %s", in, p.Price)
		}
	}
}

func TestParsePrice(t *testing.T) {
	if _, err := ParsePrice("abc"); err == nil {
		t.Fatal("expected error")
	}
	p, err := ParsePrice(" 3.25 ")
	if err != nil || p.String() != "3.25" {
		t.Fatalf("ParsePrice = %v, %v", p, err)
	}
}
