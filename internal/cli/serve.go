package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/goserg/sportscheduler/internal/config"
	"github.com/goserg/sportscheduler/internal/service"
	"github.com/goserg/sportscheduler/internal/storage/sqlite"
	"github.com/goserg/sportscheduler/internal/web"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := open(ctx, cfg)
	if err != nil {
		return err
	}
	defer d.db.Close()

	st := sqlite.New(d.log, d.db)
	server, err := web.New(d.log, cfg.Server, d.auth, service.New(d.log, st, st))
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-gctx.Done()
		d.log.Info("shutting down")
		return server.Shutdown()
	})
	return g.Wait()
}
