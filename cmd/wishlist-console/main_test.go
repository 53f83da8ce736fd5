package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectLookupArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "bare id",
			in:   []string{"wishlist-console", "12"},
			want: []string{"wishlist-console", "wishlists", "get", "12"},
		},
		{
			name: "id after value flag",
			in:   []string{"wishlist-console", "--base-url", "http://x:1", "12"},
			want: []string{"wishlist-console", "--base-url", "http://x:1", "wishlists", "get", "12"},
		},
		{
			name: "id after flag=value and bool flag",
			in:   []string{"wishlist-console", "--format=edn", "--pretty", "3"},
			want: []string{"wishlist-console", "--format=edn", "--pretty", "wishlists", "get", "3"},
		},
		{
			name: "after double dash",
			in:   []string{"wishlist-console", "--", "4"},
			want: []string{"wishlist-console", "--", "wishlists", "get", "4"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"wishlist-console", "wishlists", "get", "1"},
			want: []string{"wishlist-console", "wishlists", "get", "1"},
		},
		{
			name: "zero is not an id",
			in:   []string{"wishlist-console", "0"},
			want: []string{"wishlist-console", "0"},
		},
		{
			name: "no args",
			in:   []string{"wishlist-console"},
			want: []string{"wishlist-console"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewriteDirectLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
