package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	exportfmt "github.com/retail-tools/ledger-atlas/pkg/export"
	"github.com/retail-tools/ledger-atlas/pkg/runtime/terminal/commands"
	"github.com/retail-tools/ledger-atlas/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	reporter  *export.Reporter
	formatter *exportfmt.Formatter
	exportDir string
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	Currency  string
	ExportDir string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	formatter := exportfmt.NewFormatter(opts.Currency)
	cli := &CLI{
		reporter:  export.NewReporter(opts.Output, formatter),
		formatter: formatter,
		exportDir: opts.ExportDir,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger-atlas",
		Short: "Analytics and reporting over retail business records",
	}

	cmd.AddCommand(commands.NewTemplatesCmd())
	cmd.AddCommand(commands.NewRunCmd(cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(cli.formatter, cli.exportDir))
	cmd.AddCommand(commands.NewMetricsCmd(cli.reporter))

	return cmd
}
