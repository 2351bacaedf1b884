package adapters

import (
	"github.com/retail-tools/ledger-atlas/pkg/models/api"
	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

func MapTemplateDomainToApi(cfg domain.ReportConfig) api.Template {
	return api.Template{
		ID:          cfg.ID,
		Title:       cfg.Title,
		Description: cfg.Description,
		DataSource:  cfg.DataSource,
		ChartType:   cfg.ChartType,
	}
}

func MapTemplatesDomainToApi(cfgs []domain.ReportConfig) []api.Template {
	templates := make([]api.Template, 0, len(cfgs))
	for _, cfg := range cfgs {
		templates = append(templates, MapTemplateDomainToApi(cfg))
	}
	return templates
}
