package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session history as JSON, CSV, or Markdown",
	Long:  "Export the full session history in a machine-readable format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportRun()
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json, csv, markdown")
	rootCmd.AddCommand(exportCmd)
}

func exportRun() error {
	records, err := getStore().Load(context.Background())
	if err != nil {
		return err
	}

	switch exportFormat {
	case "json":
		enc := json.NewEncoder(ui.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "csv":
		w := csv.NewWriter(ui.Out)
		w.Write([]string{"ID", "Kind", "Started", "Ended", "DurationSeconds", "Completed"})
		for _, rec := range records {
			w.Write([]string{
				rec.ID,
				string(rec.Kind),
				rec.StartedAt.Format("2006-01-02T15:04:05"),
				rec.EndedAt.Format("2006-01-02T15:04:05"),
				fmt.Sprintf("%d", rec.DurationSeconds),
				fmt.Sprintf("%t", rec.Completed),
			})
		}
		w.Flush()
		return w.Error()
	case "markdown":
		fmt.Fprintln(ui.Out, "# Sessions")
		fmt.Fprintln(ui.Out)
		fmt.Fprintln(ui.Out, "| Started | Kind | Length | Completed |")
		fmt.Fprintln(ui.Out, "|---------|------|--------|-----------|")
		for _, rec := range records {
			fmt.Fprintf(ui.Out, "| %s | %s | %d min | %t |\n",
				rec.StartedAt.Format("2006-01-02 15:04"), rec.Kind,
				rec.DurationSeconds/60, rec.Completed)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s (use: json, csv, markdown)", exportFormat)
	}
}
