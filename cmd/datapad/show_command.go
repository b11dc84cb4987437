package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/route"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Look up one character by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, ctx, strings.Join(args, " "), open)
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "open the character's resource URL")
	return cmd
}

func runShow(cmd *cobra.Command, ctx *commandContext, name string, open bool) error {
	svcs, err := ctx.openServices()
	if err != nil {
		return err
	}
	defer svcs.close()

	c, err := svcs.characters.Lookup(cmd.Context(), name)
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, c.Name)
	fmt.Fprintln(out, route.PersonPath(c.Name))

	fields := c.Fields()
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f.Label, f.Value}
	}
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil))

	if open {
		if c.URL == "" {
			return errors.New("no resource URL for " + c.Name)
		}
		if err := svcs.opener.Open(c.URL); err != nil {
			return err
		}
	}
	return nil
}
