package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/iso639/pkg/iso639"
)

func newListCmd(c *cli) *cobra.Command {
	var scope, typ string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dataset records ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, t := iso639.Scope(scope), iso639.Type(typ)
			if s != "" && !s.IsValid() {
				return fmt.Errorf("unknown scope %q", scope)
			}
			if t != "" && !t.IsValid() {
				return fmt.Errorf("unknown type %q", typ)
			}

			reg, release, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tPT1\tPT2B\tPT2T\tPT3\tPT5\tSCOPE\tTYPE")
			for lg := range reg.Langs() {
				if s != "" && lg.Scope() != s {
					continue
				}
				if t != "" && lg.Type() != t {
					continue
				}
				fmt.Fprintln(tw, strings.Join([]string{
					lg.Key(), lg.Name(),
					dash(lg.PT1()), dash(lg.PT2B()), dash(lg.PT2T()), dash(lg.PT3()), dash(lg.PT5()),
					lg.Scope().String(), dash(lg.Type().String()),
				}, "\t"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "", "only records of this scope (Individual, Macrolanguage, Special, Dialect, Group)")
	cmd.Flags().StringVar(&typ, "type", "", "only records of this type (Living, Extinct, Ancient, Historical, Constructed, Special)")
	return cmd
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
