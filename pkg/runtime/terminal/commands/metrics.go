package commands

import (
	"github.com/spf13/cobra"

	"github.com/retail-tools/ledger-atlas/pkg/runtime/terminal/export"
	"github.com/retail-tools/ledger-atlas/pkg/services/report"
	"github.com/retail-tools/ledger-atlas/pkg/store/snapshot"
)

type MetricsCmd struct {
	snapshotPath string
	window       int
	reporter     *export.Reporter
}

func NewMetricsCmd(reporter *export.Reporter) *cobra.Command {
	mc := &MetricsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Statistical metrics over the sales and inventory history",
	}

	cmd.PersistentFlags().StringVar(&mc.snapshotPath, "snapshot", "", "Path to the collections snapshot file")
	_ = cmd.MarkPersistentFlagRequired("snapshot")

	forecast := &cobra.Command{
		Use:   "forecast",
		Short: "Linear revenue trend forecast",
		RunE:  mc.forecast,
	}
	forecast.Flags().IntVar(&mc.window, "window", 0, "Trailing window in days (default 30)")

	cmd.AddCommand(forecast)
	cmd.AddCommand(&cobra.Command{
		Use:   "clv",
		Short: "Customer lifetime value",
		RunE:  mc.clv,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "turnover",
		Short: "Inventory turnover",
		RunE:  mc.turnover,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "kpi",
		Short: "Headline business summary",
		RunE:  mc.kpi,
	})

	return cmd
}

func (mc *MetricsCmd) service() report.Service {
	return report.NewService(snapshot.NewStore(mc.snapshotPath))
}

func (mc *MetricsCmd) forecast(cmd *cobra.Command, args []string) error {
	f, err := mc.service().Forecast(cmd.Context(), mc.window)
	if err != nil {
		return err
	}
	return mc.reporter.HandleForecast(f)
}

func (mc *MetricsCmd) clv(cmd *cobra.Command, args []string) error {
	v, err := mc.service().LifetimeValue(cmd.Context())
	if err != nil {
		return err
	}
	return mc.reporter.HandleLifetimeValue(v)
}

func (mc *MetricsCmd) turnover(cmd *cobra.Command, args []string) error {
	t, err := mc.service().Turnover(cmd.Context())
	if err != nil {
		return err
	}
	return mc.reporter.HandleTurnover(t)
}

func (mc *MetricsCmd) kpi(cmd *cobra.Command, args []string) error {
	k, err := mc.service().KPI(cmd.Context())
	if err != nil {
		return err
	}
	return mc.reporter.HandleKPI(k)
}
