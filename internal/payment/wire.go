package payment

import (
	"context"
	"strconv"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/panel"

	"go.uber.org/zap"
)

type Panel struct {
	*panel.Engine[domain.Payment]
}

func NewPanel(client *api.Client, baseURL string, logger *zap.Logger) *Panel {
	cfg := panel.Config[domain.Payment]{
		Key:      "payments",
		Name:     "Payment",
		Plural:   "payments",
		BasePath: api.JoinURL(baseURL, "/payments"),
		Fields: []panel.FieldSpec{
			{Name: "orderId", Kind: panel.FieldInt, Required: true},
			{Name: "amount", Kind: panel.FieldDecimal, Required: true},
			{Name: "paymentMode", Kind: panel.FieldSelect, Required: true, Default: domain.PaymentModeCreditCard, Options: domain.PaymentModes()},
			{Name: "paymentStatus", Kind: panel.FieldSelect, Required: true, Default: domain.PaymentStatusPending, Options: domain.PaymentStatuses()},
		},
		ToDraft: func(p domain.Payment) panel.Draft {
			return panel.Draft{
				"orderId":       strconv.FormatInt(p.OrderID, 10),
				"amount":        strconv.FormatFloat(p.Amount, 'f', -1, 64),
				"paymentMode":   p.PaymentMode,
				"paymentStatus": p.PaymentStatus,
			}
		},
		Status:      func(p domain.Payment) string { return p.PaymentStatus },
		Transitions: domain.PaymentTransitions(),
	}

	return &Panel{Engine: panel.NewEngine(cfg, client, logger)}
}

// Process asks the backend to settle a pending payment. The client never
// pre-decides the outcome; SUCCESS or FAILED arrives with the reload.
func (p *Panel) Process(ctx context.Context, id int64) error {
	return p.Transition(ctx, domain.ActionProcess, id)
}

// Refund fires SUCCESS -> REFUNDED through the narrow status endpoint.
func (p *Panel) Refund(ctx context.Context, id int64) error {
	return p.Transition(ctx, domain.ActionRefund, id)
}
