package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/datapad/internal/route"
	"github.com/mmcdole/datapad/internal/tui"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var routeFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "datapad",
		Short:         "Browse the Star Wars people catalog",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := route.Parse(routeFlag)
			if err != nil {
				return err
			}

			if !isTerminal(cmd) {
				// Piped output gets the plain rendering of the route
				if start.Kind == route.KindPerson {
					return runShow(cmd, ctx, start.Name, false)
				}
				return runList(cmd, ctx, listOptions{})
			}
			return runTUI(ctx, start)
		},
	}

	rootCmd.SetVersionTemplate("datapad {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&routeFlag, "route", "/", "Start at a route, e.g. /person/Luke%20Skywalker")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newRecentCommand(ctx))

	return rootCmd
}

// isTerminal reports whether the command writes to an interactive terminal
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runTUI(ctx *commandContext, start route.Route) error {
	svcs, err := ctx.openServices()
	if err != nil {
		return err
	}
	defer svcs.close()

	ctx.logger.Info("starting datapad", "version", Version, "route", start.String())

	model := tui.NewModel(svcs.characters, svcs.preferences, start, ctx.logger)
	model.Opener = svcs.opener
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Shutdown()
	}
	if err != nil {
		ctx.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	ctx.logger.Info("shutting down")
	return nil
}
