package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shopdocs/launcher/ident"
	"github.com/shopdocs/launcher/internal/launch"
)

func (a *App) newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <token>...",
		Short: "Print what tokens expand to without opening anything",
		Long: `Print the identifiers a command line expands to. Nothing is looked up or
opened.

Examples:
  shopdocs resolve 1234 23-25              # 01234 01223 01224 01225
  shopdocs resolve --variant drawing A1-A3  # A1 A2 A3
  shopdocs resolve --format yaml 120-45`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runResolve,
	}
	cmd.Flags().String("variant", "numeric", "identifier grammar: numeric|drawing")
	cmd.Flags().StringP("format", "f", "text", "output format: text|json|yaml")
	cmd.Flags().Int("width", 0, "zero-pad numbers to this many digits (default: ereports.width for numeric, none for drawing)")
	return cmd
}

func (a *App) runResolve(cmd *cobra.Command, args []string) error {
	const operation = "resolve identifiers"

	variantName, _ := cmd.Flags().GetString("variant")
	format, _ := cmd.Flags().GetString("format")

	v, err := ident.ParseVariant(variantName)
	if err != nil {
		return NewValidationError(operation, "variant", variantName, "Use --variant numeric or --variant drawing", CommonSuggestions.RunHelp)
	}

	width := 0
	if v == ident.Numeric {
		width = a.cfg.Reports.Width
	}
	if changedFlag(cmd.Flags(), "width") {
		width, _ = cmd.Flags().GetInt("width")
	}

	groups, err := launch.Plan(v, args, a.cfg.MaxRange, width)
	if err != nil {
		return expandError(operation, v, err)
	}

	if err := writeGroups(cmd.OutOrStdout(), format, groups); err != nil {
		return NewValidationError(operation, "format", format, "Use --format text, json or yaml", CommonSuggestions.RunHelp)
	}
	return nil
}

func writeGroups(w io.Writer, format string, groups []launch.Group) error {
	switch format {
	case "text", "":
		for _, name := range launch.Names(groups) {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(groups); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
