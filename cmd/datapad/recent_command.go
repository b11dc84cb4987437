package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecentCommand(ctx *commandContext) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "recent [query]",
		Short: "List recently viewed characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := ctx.openServices()
			if err != nil {
				return err
			}
			defer svcs.close()

			out := cmd.OutOrStdout()
			if clear {
				if err := svcs.preferences.ClearRecent(); err != nil {
					return fmt.Errorf("clear recent lookups: %w", err)
				}
				fmt.Fprintln(out, "Recent lookups cleared")
				return nil
			}

			var query string
			if len(args) == 1 {
				query = args[0]
			}

			names := svcs.preferences.SearchRecent(query)
			if len(names) == 0 {
				fmt.Fprintln(out, "No recent lookups")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Forget the lookup history")
	return cmd
}
