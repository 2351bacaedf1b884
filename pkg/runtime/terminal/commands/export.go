package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	exportfmt "github.com/retail-tools/ledger-atlas/pkg/export"
	"github.com/retail-tools/ledger-atlas/pkg/services/report"
	"github.com/retail-tools/ledger-atlas/pkg/store/snapshot"
)

type ExportCmd struct {
	snapshotPath string
	templateID   string
	configPath   string
	format       string
	outDir       string
	formatter    *exportfmt.Formatter
}

func NewExportCmd(formatter *exportfmt.Formatter, defaultOutDir string) *cobra.Command {
	if defaultOutDir == "" {
		defaultOutDir = "."
	}

	ec := &ExportCmd{formatter: formatter}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run a report and write it to a CSV or PDF file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.snapshotPath, "snapshot", "", "Path to the collections snapshot file")
	cmd.Flags().StringVar(&ec.templateID, "template", "", "Id of a prebuilt report template")
	cmd.Flags().StringVar(&ec.configPath, "config", "", "Path to a report config JSON file")
	cmd.Flags().StringVar(&ec.format, "format", "csv", "Export format: csv or pdf")
	cmd.Flags().StringVar(&ec.outDir, "out", defaultOutDir, "Directory to write the export into")

	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	format, err := exportfmt.ParseFormat(ec.format)
	if err != nil {
		return err
	}

	svc := report.NewService(snapshot.NewStore(ec.snapshotPath))
	result, err := execute(ctx, svc, ec.templateID, ec.configPath)
	if err != nil {
		return err
	}

	path := filepath.Join(ec.outDir, exportfmt.Filename(result.Config.Title, format, time.Now()))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer file.Close()

	if err := ec.formatter.Write(file, format, result); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(result.Rows), path)
	return nil
}
