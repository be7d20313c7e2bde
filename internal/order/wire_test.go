package order

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPanel(t *testing.T) (*Panel, func() *domain.Order, int64) {
	t.Helper()

	baseURL, store := testutil.StartStub(t, 1)
	created := store.CreateOrder(domain.Order{
		AccountID:     1,
		CatalogItemID: 2,
		Quantity:      1,
		TotalPrice:    9.99,
		Status:        domain.OrderStatusPending,
	})

	client := api.NewClient(2*time.Second, zap.NewNop())
	p := NewPanel(client, baseURL, zap.NewNop())
	require.NoError(t, p.Load(context.Background()))

	current := func() *domain.Order {
		o, ok := store.GetOrder(created.ID)
		if !ok {
			return nil
		}
		return &o
	}
	return p, current, created.ID
}

func TestConfirmIfPending(t *testing.T) {
	p, current, id := newTestPanel(t)

	require.True(t, p.Available(domain.ActionConfirm, id))
	require.NoError(t, p.ConfirmIfPending(context.Background(), id))

	assert.Equal(t, domain.OrderStatusConfirmed, current().Status)
	assert.Equal(t, domain.OrderStatusConfirmed, p.Records()[0].Status)
	assert.Equal(t, "Order status updated successfully!", p.Feedback().Message)

	// the one-click control disappears once the order left PENDING
	assert.False(t, p.Available(domain.ActionConfirm, id))
}

func TestStatusSelectorStaysPermissive(t *testing.T) {
	p, current, id := newTestPanel(t)

	// the generic edit path may jump to any status, enforced nowhere
	require.NoError(t, p.BeginEdit(id))
	require.NoError(t, p.UpdateDraftField("status", domain.OrderStatusDelivered))
	require.NoError(t, p.Submit(context.Background()))

	assert.Equal(t, domain.OrderStatusDelivered, current().Status)
	assert.Equal(t, domain.OrderStatusDelivered, p.Records()[0].Status)
}

func TestOrderActions(t *testing.T) {
	p, _, _ := newTestPanel(t)
	assert.Equal(t, []string{domain.ActionConfirm}, p.Actions())
}
