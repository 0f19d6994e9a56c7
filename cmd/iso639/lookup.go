package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/iso639/pkg/iso639"
)

func newLookupCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup <value>...",
		Short: "Resolve language values to their records",
		Long: `lookup resolves every value and prints one record per line. Values that do
not resolve are reported on stderr, deprecated ones with their replacement,
and the command exits non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, release, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)

			failed := 0
			for _, value := range args {
				lg, err := reg.New(value)
				if err != nil {
					failed++
					reportLookupError(cmd.ErrOrStderr(), err)
					continue
				}
				if asJSON {
					if err := enc.Encode(lg); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintln(out, lg)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d values did not resolve", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON lines")
	return cmd
}

func reportLookupError(w io.Writer, err error) {
	fmt.Fprintln(w, err)

	var dep *iso639.DeprecatedLanguageValueError
	if errors.As(err, &dep) && dep.Remedy != "" {
		fmt.Fprintf(w, "  remedy: %s\n", dep.Remedy)
	}
}
