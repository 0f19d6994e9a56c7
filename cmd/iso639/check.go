package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/iso639/pkg/iso639"
)

func newCheckCmd(c *cli) *cobra.Command {
	var fieldNames []string

	cmd := &cobra.Command{
		Use:   "check <value>",
		Short: "Report whether a value names a language",
		Long: `check prints true when the value resolves through one of the given fields
(any field when --field is omitted) and false otherwise. Deprecated values
print false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := make([]iso639.Field, 0, len(fieldNames))
			for _, name := range fieldNames {
				f, ok := iso639.ParseField(name)
				if !ok {
					return fmt.Errorf("unknown field %q", name)
				}
				fields = append(fields, f)
			}

			reg, release, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			fmt.Fprintln(cmd.OutOrStdout(), reg.IsLanguage(args[0], fields...))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&fieldNames, "field", "f", nil, "restrict to field (name, pt1, pt2b, pt2t, pt3, pt5, other_names); repeatable")
	return cmd
}
