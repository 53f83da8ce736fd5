package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"wishlist-console/internal/cli"

	"github.com/joho/godotenv"
)

func isWishlistID(s string) bool {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil && n > 0
}

// rewriteDirectLookupArgs turns `wishlist-console <id>` into
// `wishlist-console wishlists get <id>`. Cobra treats the first non-flag token
// as a subcommand, so argv is rewritten before parsing. Persistent flags may
// come first, so the first positional token is searched for, not argv[1].
func rewriteDirectLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--base-url":     true,
		"--timeout":      true,
		"--format":       true,
		"--journal":      true,
		"--log-level":    true,
		"--log-file":     true,
		"--metrics-addr": true,
	}

	rewrite := func(i int) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "wishlists", "get")
		out = append(out, argv[i:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isWishlistID(argv[i+1]) {
				return rewrite(i + 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			// Unknown flags are skipped without consuming a value so the id
			// is never swallowed.
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isWishlistID(a) {
			return rewrite(i)
		}
		return argv
	}

	return argv
}

func main() {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	os.Args = rewriteDirectLookupArgs(os.Args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
