package report

import (
	"context"
	"fmt"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/catalog"
	"github.com/retail-tools/ledger-atlas/pkg/services/engine"
	"github.com/retail-tools/ledger-atlas/pkg/services/metrics"
	"github.com/retail-tools/ledger-atlas/pkg/services/templates"
)

// CollectionsProvider supplies the read-only record snapshot a run
// operates on. The engine re-reads it per call and tolerates the
// underlying data changing between runs.
type CollectionsProvider interface {
	Collections(ctx context.Context) (domain.Collections, error)
}

// Service is the application-level surface over the analytics engine.
type Service interface {
	Templates(ctx context.Context) []domain.ReportConfig
	Catalog(ctx context.Context, src domain.Source) ([]domain.Field, error)
	Run(ctx context.Context, cfg domain.ReportConfig) (domain.ResultSet, error)
	RunTemplate(ctx context.Context, id string) (domain.ResultSet, error)
	Forecast(ctx context.Context, window int) (domain.Forecast, error)
	LifetimeValue(ctx context.Context) (domain.CustomerValue, error)
	Turnover(ctx context.Context) (domain.Turnover, error)
	KPI(ctx context.Context) (domain.KPISummary, error)
}

type service struct {
	store CollectionsProvider
}

func NewService(store CollectionsProvider) Service {
	return &service{store: store}
}

func (s *service) Templates(_ context.Context) []domain.ReportConfig {
	return templates.List()
}

func (s *service) Catalog(_ context.Context, src domain.Source) ([]domain.Field, error) {
	fields := catalog.Fields(src)
	if fields == nil {
		return nil, fmt.Errorf("unknown data source %q", src)
	}
	return fields, nil
}

func (s *service) Run(ctx context.Context, cfg domain.ReportConfig) (domain.ResultSet, error) {
	c, err := s.store.Collections(ctx)
	if err != nil {
		return domain.ResultSet{}, err
	}
	return engine.Run(c, cfg)
}

func (s *service) RunTemplate(ctx context.Context, id string) (domain.ResultSet, error) {
	tpl, ok := templates.Find(id)
	if !ok {
		return domain.ResultSet{}, fmt.Errorf("unknown report template %q", id)
	}
	return s.Run(ctx, tpl)
}

func (s *service) Forecast(ctx context.Context, window int) (domain.Forecast, error) {
	c, err := s.store.Collections(ctx)
	if err != nil {
		return domain.Forecast{}, err
	}
	return metrics.RevenueForecast(c.Sales, window), nil
}

func (s *service) LifetimeValue(ctx context.Context) (domain.CustomerValue, error) {
	c, err := s.store.Collections(ctx)
	if err != nil {
		return domain.CustomerValue{}, err
	}
	return metrics.LifetimeValue(c.Sales), nil
}

func (s *service) Turnover(ctx context.Context) (domain.Turnover, error) {
	c, err := s.store.Collections(ctx)
	if err != nil {
		return domain.Turnover{}, err
	}
	return metrics.InventoryTurnover(c.Sales, c.Products), nil
}

func (s *service) KPI(ctx context.Context) (domain.KPISummary, error) {
	c, err := s.store.Collections(ctx)
	if err != nil {
		return domain.KPISummary{}, err
	}
	return metrics.Summary(c), nil
}
