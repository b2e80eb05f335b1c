package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgen-dev/pgen/internal/config"
)

func newConfigCmd(s *state) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			text, err := dump(&s.cfg)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), text)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
