package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"goal-server/internal/goals"
	"goal-server/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr      string
		publicDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(); err != nil {
				return err
			}
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			if publicDir != "" {
				a.cfg.Server.PublicDir = publicDir
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store := goals.NewStore(a.cfg.Goal.Default)
			srv := server.New(a.cfg, store, &a.logger)

			a.logger.Info().
				Str("public_dir", a.cfg.Server.PublicDir).
				Str("goal", store.Get()).
				Msg("starting goal-server")

			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&publicDir, "public-dir", "", "static files directory (overrides server.public_dir)")
	return cmd
}
