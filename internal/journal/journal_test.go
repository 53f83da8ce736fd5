package journal

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"wishlist-console/internal/restapi"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, opts ...Option) (*Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "journal.sqlite")
	j, err := Open(context.Background(), path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ")
	require.ErrorIs(t, err, errPathRequired)
}

func TestAppendAndList(t *testing.T) {
	j, _ := openTemp(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	j.now = func() time.Time { return fixed }
	ctx := context.Background()

	j.ObserveRequest(ctx, restapi.Record{
		Op: restapi.OpCreateWishlist, Method: http.MethodPost, Path: "/wishlists",
		Status: http.StatusCreated, Duration: 12 * time.Millisecond,
	})
	j.ObserveRequest(ctx, restapi.Record{
		Op: restapi.OpGetWishlist, Method: http.MethodGet, Path: "/wishlists/9",
		Status: http.StatusNotFound, Err: errors.New("Wishlist with id '9' was not found."),
	})

	got, err := j.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "wishlist.create", got[0].Op)
	require.True(t, got[0].OK)
	require.Equal(t, int64(12), got[0].DurationMS)
	require.True(t, got[0].At.Equal(fixed))
	require.Equal(t, j.SessionID(), got[0].SessionID)

	require.False(t, got[1].OK)
	require.Equal(t, http.StatusNotFound, got[1].Status)
	require.Equal(t, "Wishlist with id '9' was not found.", got[1].Message)

	last, err := j.List(ctx, ListOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, last, 1)
	require.Equal(t, "wishlist.retrieve", last[0].Op)
}

func TestSessionsAreSeparated(t *testing.T) {
	j, path := openTemp(t)
	ctx := context.Background()
	require.NoError(t, j.Append(ctx, restapi.Record{Op: restapi.OpSearchWishlists, Method: http.MethodGet, Path: "/wishlists"}))

	other, err := Open(ctx, path, WithSessionID("fixed-session"))
	require.NoError(t, err)
	defer other.Close()
	require.Equal(t, "fixed-session", other.SessionID())
	require.NoError(t, other.Append(ctx, restapi.Record{Op: restapi.OpDeleteWishlist, Method: http.MethodDelete, Path: "/wishlists/1"}))

	all, err := other.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	mine, err := other.List(ctx, ListOptions{SessionID: "fixed-session"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "wishlist.delete", mine[0].Op)
}

func TestConcurrentAppends(t *testing.T) {
	j, _ := openTemp(t)
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- j.Append(ctx, restapi.Record{Op: restapi.OpSearchWishlists, Method: http.MethodGet, Path: "/wishlists"})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := j.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, got, n)

	var mode string
	require.NoError(t, j.db.QueryRowContext(ctx, "PRAGMA journal_mode;").Scan(&mode))
	require.Equal(t, "wal", mode)
	var timeout int
	require.NoError(t, j.db.QueryRowContext(ctx, "PRAGMA busy_timeout;").Scan(&timeout))
	require.Equal(t, 5000, timeout)
}
