// Command iso639 resolves ISO 639 language values, serves the HTTP lookup
// API and manages the Postgres-backed dataset.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/iso639/internal/app"
	"github.com/heartmarshall/iso639/internal/config"
	"github.com/heartmarshall/iso639/pkg/iso639"
)

// cli carries the state shared by the subcommands of one invocation.
type cli struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "iso639",
		Short: "ISO 639 language code resolver",
		Long: `iso639 resolves any ISO 639 identifier (639-1, 639-2/B, 639-2/T, 639-3,
639-5), reference name or alternate name to its language record.

Examples:
  iso639 lookup fr fre Chinese        # Resolve values
  iso639 list --scope Macrolanguage   # List records
  iso639 check cmn --field pt3        # Membership test restricted to fields
  iso639 serve                        # Start the HTTP lookup API
  iso639 migrate up                   # Prepare the Postgres schema
  iso639 import dataset.json          # Replace the Postgres dataset`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadPath(c.configPath)
			if err != nil {
				return err
			}
			if c.logLevel != "" {
				cfg.Log.Level = c.logLevel
			}
			c.cfg = cfg
			c.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		newLookupCmd(c),
		newListCmd(c),
		newCheckCmd(c),
		newServeCmd(c),
		newMigrateCmd(c),
		newImportCmd(c),
		newExportCmd(c),
		newVersionCmd(),
	)
	return root
}

// registry loads the configured dataset and indexes it. The returned func
// releases the dataset source.
func (c *cli) registry(ctx context.Context) (*iso639.Registry, func(), error) {
	ds, err := app.LoadDataset(ctx, c.cfg, c.logger)
	if err != nil {
		return nil, nil, err
	}
	return iso639.NewRegistry(ds.Dataset, iso639.WithLogger(c.logger)), ds.Close, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
