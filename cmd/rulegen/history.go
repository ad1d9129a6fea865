// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rulegen/internal/history"
	"github.com/pdiddy/rulegen/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past conversion runs",
	Long: `History lists past convert and batch runs recorded in the local run
ledger, newest first. Each run shows when it started, which model it
used, and how many files converted or failed.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := optString(cmd, "history-db")
	if path == "" {
		return fmt.Errorf("no history database configured")
	}

	ledger, err := history.Open(path)
	if err != nil {
		return err
	}
	defer ledger.Close()

	runs, err := ledger.Recent(context.Background(), optInt(cmd, "limit"))
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	return formatHistoryOutput(runs, format)
}

func formatHistoryOutput(runs []types.Run, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	case "yaml":
		data, err := yaml.Marshal(runs)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	case "table", "":
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-8s  %-19s  %-30s  %9s  %6s\n",
		"Run", "Command", "Started", "Model", "Converted", "Failed")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for _, r := range runs {
		model := r.Model
		if len(model) > 30 {
			model = model[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-8s  %-19s  %-30s  %9d  %6d\n",
			r.ID, r.Command, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			model, r.Converted, r.Failed)
	}

	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	rootCmd.AddCommand(historyCmd)
}
