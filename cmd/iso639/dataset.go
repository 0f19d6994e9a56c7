package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/iso639/internal/adapter/postgres"
	"github.com/heartmarshall/iso639/internal/adapter/postgres/language"
	"github.com/heartmarshall/iso639/internal/app"
	"github.com/heartmarshall/iso639/internal/dataset"
)

func newImportCmd(c *cli) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "import <dataset.json>",
		Short: "Replace the Postgres dataset with a JSON dataset file",
		Long: `import validates the dataset file and replaces every record, macrolanguage
edge and deprecation in Postgres in a single transaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := c.pool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if migrate {
				m, err := postgres.NewMigrator(pool, c.logger)
				if err != nil {
					return err
				}
				err = m.Up(ctx)
				m.Close()
				if err != nil {
					return err
				}
			}

			if err := language.New(pool).Store(ctx, ds); err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}

			c.logger.Info("dataset imported",
				slog.String("file", args[0]),
				slog.String("version", ds.Version),
				slog.Int("records", len(ds.Languages)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records (version %s)\n", len(ds.Languages), ds.Version)
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before importing")
	return cmd
}

func newExportCmd(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured dataset as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := app.LoadDataset(cmd.Context(), c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer ds.Close()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return dataset.Encode(w, ds.Dataset)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}
