package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"wishlist-console/internal/restapi"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, op, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "wishlist_console_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["op"] == op && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestOutcome(t *testing.T) {
	boom := errors.New("boom")
	cases := map[string]restapi.Record{
		"ok":              {Status: 200},
		"transport_error": {Err: boom},
		"server_error":    {Status: 502, Err: boom},
		"client_error":    {Status: 404, Err: boom},
	}
	for want, rec := range cases {
		if got := Outcome(rec); got != want {
			t.Fatalf("Outcome(%+v) = %q, want %q", rec, got, want)
		}
	}
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRequestMetrics(reg)
	ctx := context.Background()

	m.ObserveRequest(ctx, restapi.Record{Op: restapi.OpGetWishlist, Status: 200, Duration: time.Millisecond})
	m.ObserveRequest(ctx, restapi.Record{Op: restapi.OpGetWishlist, Status: 200, Duration: time.Millisecond})
	m.ObserveRequest(ctx, restapi.Record{Op: restapi.OpGetWishlist, Status: 404, Err: errors.New("missing")})

	require.Equal(t, 2.0, counterValue(t, reg, "wishlist.retrieve", "ok"))
	require.Equal(t, 1.0, counterValue(t, reg, "wishlist.retrieve", "client_error"))
}

func TestNilRegistererIsNoop(t *testing.T) {
	m := NewRequestMetrics(nil)
	m.ObserveRequest(context.Background(), restapi.Record{Op: restapi.OpCreateWishlist})

	var none *RequestMetrics
	none.ObserveRequest(context.Background(), restapi.Record{})
}
