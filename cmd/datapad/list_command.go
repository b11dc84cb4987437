package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/roster"
)

type listOptions struct {
	search string
	gender string
	sort   string
	desc   bool
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the character table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Case-insensitive name substring")
	cmd.Flags().StringVarP(&opts.gender, "gender", "g", "", "Gender filter (all, male, female, n/a, ...)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Sort column: name, gender or films")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "Reverse the sort order")

	return cmd
}

// buildQuery layers flags over the configured defaults
func buildQuery(defaults domain.ListQuery, opts listOptions) (domain.ListQuery, error) {
	q := defaults
	q.Search = opts.search
	if opts.gender != "" {
		q.Gender = opts.gender
	}
	if opts.sort != "" {
		key, err := domain.ParseSortKey(opts.sort)
		if err != nil {
			return q, err
		}
		q.SortKey = key
	}
	if opts.desc {
		q.SortOrder = domain.SortDesc
	}
	return q.Normalize(), nil
}

func runList(cmd *cobra.Command, ctx *commandContext, opts listOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	q, err := buildQuery(cfg.DefaultListQuery(), opts)
	if err != nil {
		return err
	}

	svcs, err := ctx.openServices()
	if err != nil {
		return err
	}
	defer svcs.close()

	records, err := svcs.characters.FetchAll(cmd.Context())
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}

	visible := roster.Apply(records, q)
	out := cmd.OutOrStdout()
	if len(visible) == 0 {
		fmt.Fprintln(out, "No characters match")
		return nil
	}

	rows := make([][]string, len(visible))
	for i, c := range visible {
		rows[i] = []string{c.Name, c.Gender, c.FilmsLabel()}
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Name", "Gender", "Films"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	))
	fmt.Fprintf(out, "%d of %d characters · sorted by %s %s\n", len(visible), len(records), q.SortKey, q.SortOrder.Arrow())
	return nil
}
