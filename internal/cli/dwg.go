package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopdocs/launcher/ident"
	"github.com/shopdocs/launcher/internal/launch"
	"github.com/shopdocs/launcher/internal/locate"
)

func (a *App) newDrawingCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dwg <job> <drawing>...",
		Aliases: []string{"vsd"},
		Short:   "Open shop drawings of a job",
		Long: `Open shop drawings of a job. Released drawings are preferred; drawings only
found in the job's preliminary folder are opened from there.

Examples:
  shopdocs dwg 4410 A1            # one drawing
  shopdocs dwg 4410 A1-A9 S12     # A1 through A9, and S12
  shopdocs dwg 4410 E120-45       # E120 through E145`,
		Args: cobra.MinimumNArgs(2),
		RunE: a.runDrawings,
	}
}

func (a *App) runDrawings(cmd *cobra.Command, args []string) error {
	const operation = "open drawings"

	job := strings.ToUpper(strings.TrimSpace(args[0]))
	if job == "" || strings.ContainsAny(job, `/\`) || job == "." || job == ".." {
		return NewValidationError(operation, "job", args[0], "Pass the job number as the first argument, e.g. shopdocs dwg 4410 A1", CommonSuggestions.RunHelp)
	}

	groups, err := launch.Plan(ident.Drawing, args[1:], a.cfg.MaxRange, 0)
	if err != nil {
		return expandError(operation, ident.Drawing, err)
	}

	locator, err := locate.New(a.fs, a.cfg.Extensions, locate.DrawingSources(a.cfg.Drawings.Root, a.cfg.Drawings.Preliminary, job)...)
	if err != nil {
		return NewConfigError(operation, err, CommonSuggestions.CheckConfig)
	}

	a.logger.Info("opening drawings", "job", job, "tokens", args[1:])

	l := a.launcher("dwg", cmd.OutOrStdout(), locator, drawingLine)
	_, err = l.Launch(cmd.Context(), launch.Names(groups))
	return WrapError(operation, err)
}
