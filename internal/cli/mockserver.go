package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"wishlist-console/internal/logging"
	"wishlist-console/internal/mockapi"
	"wishlist-console/internal/model"

	"github.com/spf13/cobra"
)

func newMockServerCmd(app *App) *cobra.Command {
	var (
		addr string
		seed bool
	)

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Serve an in-memory wishlist service for local use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := logging.Open(app.LogLevel, app.LogFile, cmd.ErrOrStderr())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closer.Close()

			srv := mockapi.NewServer(logger)
			if seed {
				srv.Seed(model.Wishlist{UserID: 1, Name: "Birthday", Products: []model.Product{
					{ProductID: 10, Name: "Mug", Price: model.MustPrice("9.99")},
					{ProductID: 11, Name: "Tea", Price: model.MustPrice("4.50")},
				}})
			}

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return writeErr(cmd, err)
			}
			httpSrv := &http.Server{Handler: srv.Handler(), ReadHeaderTimeout: 5 * time.Second}

			ctx := cmd.Context()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = httpSrv.Shutdown(shutdownCtx)
			}()

			logger.WithField("addr", ln.Addr().String()).Info("mock wishlist service listening")
			if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	cmd.Flags().BoolVar(&seed, "seed", false, "Start with one sample wishlist")

	return cmd
}
