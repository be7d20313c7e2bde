package catalog

import (
	"strconv"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/panel"

	"go.uber.org/zap"
)

func NewPanel(client *api.Client, baseURL string, logger *zap.Logger) *panel.Engine[domain.CatalogItem] {
	cfg := panel.Config[domain.CatalogItem]{
		Key:      "catalog",
		Name:     "Catalog item",
		Plural:   "catalog items",
		BasePath: api.JoinURL(baseURL, "/catalog-items"),
		Fields: []panel.FieldSpec{
			{Name: "name", Kind: panel.FieldText, Required: true},
			{Name: "category", Kind: panel.FieldSelect, Required: true, Options: domain.CatalogCategories()},
			{Name: "price", Kind: panel.FieldDecimal, Required: true},
			{Name: "stock", Kind: panel.FieldInt, Required: true},
		},
		ToDraft: func(c domain.CatalogItem) panel.Draft {
			return panel.Draft{
				"name":     c.Name,
				"category": c.Category,
				"price":    strconv.FormatFloat(c.Price, 'f', -1, 64),
				"stock":    strconv.Itoa(c.Stock),
			}
		},
	}

	return panel.NewEngine(cfg, client, logger)
}
