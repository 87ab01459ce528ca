package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"goal-server/internal/config"
	"goal-server/internal/logging"
)

// app holds what the serve path needs; rng and version never touch it.
type app struct {
	configPath string
	cfg        *config.Config
	logger     zerolog.Logger
}

// load reads the config and builds the process logger.
func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.Log)
	log.Logger = a.logger
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	serveCmd := newServeCmd(a)

	root := &cobra.Command{
		Use:           "goal-server",
		Short:         "Serve a page showing the current learning goal",
		SilenceUsage:  true,
		SilenceErrors: true,
		// no subcommand means serve
		RunE: serveCmd.RunE,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file")
	root.Flags().AddFlagSet(serveCmd.Flags())

	root.AddCommand(serveCmd, newRngCmd(), newVersionCmd())
	return root
}
