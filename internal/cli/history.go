package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shopdocs/launcher/internal/history"
)

func (a *App) newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently opened files",
		Args:  cobra.NoArgs,
		RunE:  a.runHistory,
	}
	cmd.Flags().IntP("limit", "n", 20, "number of entries to show (0 for all)")
	cmd.Flags().StringP("format", "f", "table", "output format: table|json|yaml")
	cmd.Flags().Bool("clear", false, "remove every entry")
	return cmd
}

func (a *App) runHistory(cmd *cobra.Command, args []string) error {
	const operation = "read history"

	store, err := a.historyStore()
	if err != nil {
		return WrapError(operation, err, CommonSuggestions.CheckConfig)
	}
	if store == nil {
		return &CLIError{
			Operation:   operation,
			Cause:       "history is disabled",
			Suggestions: []string{"Set history.enabled: true in the config file"},
		}
	}

	if clearAll, _ := cmd.Flags().GetBool("clear"); clearAll {
		if err := store.Clear(cmd.Context()); err != nil {
			return WrapError("clear history", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return WrapError(operation, err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		if len(entries) == 0 {
			fmt.Fprintln(out, "No files opened yet.")
			return nil
		}
		fmt.Fprintln(out, historyTable(entries, newStyles(out, a.noColor)))
		return nil
	default:
		return NewValidationError(operation, "format", format, "Use --format table, json or yaml", CommonSuggestions.RunHelp)
	}
}

func historyTable(entries []history.Entry, st styles) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.muted).
		Headers("OPENED", "COMMAND", "IDENTIFIER", "SOURCE", "PATH").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, e := range entries {
		t.Row(e.OpenedAt.Local().Format("2006-01-02 15:04"), e.Command, e.Identifier, e.Source, e.Path)
	}
	return t.String()
}
