package order

import (
	"context"
	"strconv"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/panel"

	"go.uber.org/zap"
)

// Panel adds the order-specific one-click action on top of the generic
// engine. The edit form's status selector stays unconstrained; confirm is
// the only validated transition.
type Panel struct {
	*panel.Engine[domain.Order]
}

func NewPanel(client *api.Client, baseURL string, logger *zap.Logger) *Panel {
	cfg := panel.Config[domain.Order]{
		Key:      "orders",
		Name:     "Order",
		Plural:   "orders",
		BasePath: api.JoinURL(baseURL, "/orders"),
		Fields: []panel.FieldSpec{
			{Name: "accountId", Kind: panel.FieldInt, Required: true},
			{Name: "catalogItemId", Kind: panel.FieldInt, Required: true},
			{Name: "quantity", Kind: panel.FieldInt, Required: true},
			{Name: "totalPrice", Kind: panel.FieldDecimal, Required: true},
			{Name: "status", Kind: panel.FieldSelect, Required: true, Default: domain.OrderStatusPending, Options: domain.OrderStatuses()},
		},
		ToDraft: func(o domain.Order) panel.Draft {
			return panel.Draft{
				"accountId":     strconv.FormatInt(o.AccountID, 10),
				"catalogItemId": strconv.FormatInt(o.CatalogItemID, 10),
				"quantity":      strconv.Itoa(o.Quantity),
				"totalPrice":    strconv.FormatFloat(o.TotalPrice, 'f', -1, 64),
				"status":        o.Status,
			}
		},
		Status:      func(o domain.Order) string { return o.Status },
		Transitions: domain.OrderTransitions(),
	}

	return &Panel{Engine: panel.NewEngine(cfg, client, logger)}
}

// ConfirmIfPending fires PENDING -> CONFIRMED through the narrow status
// endpoint. The control surface only shows it for pending orders; calling it
// anyway leaves the outcome to the server, never to local state.
func (p *Panel) ConfirmIfPending(ctx context.Context, id int64) error {
	return p.Transition(ctx, domain.ActionConfirm, id)
}
