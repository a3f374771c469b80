package cli

import (
	"github.com/spf13/cobra"

	"github.com/shopdocs/launcher/ident"
	"github.com/shopdocs/launcher/internal/launch"
	"github.com/shopdocs/launcher/internal/locate"
)

func (a *App) newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "erep <number>...",
		Short: "Open e-reports by program number",
		Long: `Open e-reports by program number. A number shorter than the previous one
borrows its leading digits, so "12345 50-60 7" opens 12345, 12350 through
12360, and 12367.

Examples:
  shopdocs erep 12345
  shopdocs erep 12345 50-60 7`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runReports,
	}
}

func (a *App) runReports(cmd *cobra.Command, args []string) error {
	const operation = "open e-reports"

	groups, err := launch.Plan(ident.Numeric, args, a.cfg.MaxRange, a.cfg.Reports.Width)
	if err != nil {
		return expandError(operation, ident.Numeric, err)
	}

	locator, err := locate.New(a.fs, a.cfg.Extensions, locate.ReportSources(a.cfg.Reports.Root)...)
	if err != nil {
		return NewConfigError(operation, err, CommonSuggestions.CheckConfig)
	}

	a.logger.Info("opening e-reports", "tokens", args)

	l := a.launcher("erep", cmd.OutOrStdout(), locator, reportLine)
	_, err = l.Launch(cmd.Context(), launch.Names(groups))
	return WrapError(operation, err)
}
