package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askiada/go-autodraw/internal/config"
	"github.com/askiada/go-autodraw/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
		cfg        config.Config
	)

	root := &cobra.Command{
		Use:           "autodraw",
		Short:         "Render the autodraw state of a project",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if debug {
				loaded.Log.Level = logging.LevelDebug
			}

			_, err = logging.Configure(logging.Options{
				Level:     loaded.Log.Level,
				Format:    loaded.Log.Format,
				Writer:    cmd.ErrOrStderr(),
				Component: cmd.Name(),
			})
			if err != nil {
				return err
			}

			cfg = *loaded

			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./autodraw.yml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(drawCmd(&cfg))
	root.AddCommand(watchCmd(&cfg))

	return root
}
