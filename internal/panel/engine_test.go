package panel

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/stub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recorder wraps a backend handler and keeps "METHOD /path" per request so
// tests can assert exactly which calls went on the wire.
type recorder struct {
	mu    sync.Mutex
	calls []string
	next  http.Handler
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec.mu.Lock()
	rec.calls = append(rec.calls, r.Method+" "+r.URL.Path)
	rec.mu.Unlock()
	rec.next.ServeHTTP(w, r)
}

func (rec *recorder) Calls() []string {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]string, len(rec.calls))
	copy(out, rec.calls)
	return out
}

func orderFields() []FieldSpec {
	return []FieldSpec{
		{Name: "accountId", Kind: FieldInt, Required: true},
		{Name: "catalogItemId", Kind: FieldInt, Required: true},
		{Name: "quantity", Kind: FieldInt, Required: true},
		{Name: "totalPrice", Kind: FieldDecimal, Required: true},
		{Name: "status", Kind: FieldSelect, Required: true, Default: domain.OrderStatusPending, Options: domain.OrderStatuses()},
	}
}

func orderConfig(baseURL string) Config[domain.Order] {
	return Config[domain.Order]{
		Key:      "orders",
		Name:     "Order",
		Plural:   "orders",
		BasePath: baseURL + "/orders",
		Fields:   orderFields(),
		ToDraft: func(o domain.Order) Draft {
			return Draft{
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
}

// newOrderEngine boots a stub backend with n seeded orders behind a call
// recorder and returns an engine pointed at it.
func newOrderEngine(t *testing.T, n int) (*Engine[domain.Order], *stub.Store, *recorder) {
	t.Helper()

	store := stub.NewStore(1)
	for i := 0; i < n; i++ {
		store.CreateOrder(domain.Order{
			AccountID:     int64(i + 1),
			CatalogItemID: 10,
			Quantity:      1,
			TotalPrice:    9.99,
			Status:        domain.OrderStatusPending,
		})
	}

	rec := &recorder{next: stub.NewRouter(store, zap.NewNop())}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	client := api.NewClient(2*time.Second, zap.NewNop())
	return NewEngine(orderConfig(server.URL), client, zap.NewNop()), store, rec
}

func fillOrderDraft(e *Engine[domain.Order]) {
	e.UpdateDraftField("accountId", "7")
	e.UpdateDraftField("catalogItemId", "3")
	e.UpdateDraftField("quantity", "2")
	e.UpdateDraftField("totalPrice", "19.98")
}

func TestLoad_ReplacesStoreInServerOrder(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 3)

	require.NoError(t, engine.Load(context.Background()))

	records := engine.Records()
	require.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, int64(i+1), r.ID, "server ordering must be preserved")
	}
	assert.Equal(t, FeedbackNone, engine.Feedback().Kind)
}

func TestLoad_FailureKeepsPriorSnapshot(t *testing.T) {
	var fail bool
	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":1,"accountId":1,"catalogItemId":1,"quantity":1,"totalPrice":5,"status":"PENDING"}]`)
	}))
	defer server.Close()

	client := api.NewClient(2*time.Second, zap.NewNop())
	engine := NewEngine(orderConfig(server.URL), client, zap.NewNop())

	require.NoError(t, engine.Load(context.Background()))
	require.Len(t, engine.Records(), 1)

	mu.Lock()
	fail = true
	mu.Unlock()

	err := engine.Load(context.Background())
	require.Error(t, err)
	assert.Len(t, engine.Records(), 1, "stale snapshot must stay available")
	assert.Equal(t, FeedbackError, engine.Feedback().Kind)
	assert.Equal(t, "Failed to fetch orders", engine.Feedback().Message)
}

func TestBeginEditThenCancel_LeavesEverythingUnchanged(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 2)
	require.NoError(t, engine.Load(context.Background()))

	before := engine.Records()

	require.NoError(t, engine.BeginEdit(2))
	assert.True(t, engine.Session().Editing)
	assert.Equal(t, int64(2), engine.Session().ID)
	assert.Equal(t, "2", engine.Draft()["accountId"], "draft copies remote values")

	engine.UpdateDraftField("quantity", "999")
	engine.CancelEdit()

	assert.Equal(t, before, engine.Records())
	assert.False(t, engine.Session().Editing)
	assert.Equal(t, BlankDraft(orderFields()), engine.Draft())
}

func TestBeginEdit_UnknownRecord(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 1)
	require.NoError(t, engine.Load(context.Background()))

	err := engine.BeginEdit(42)
	require.Error(t, err)
	assert.False(t, engine.Session().Editing)
}

func TestBeginEdit_OverwritesPriorDraft(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 2)
	require.NoError(t, engine.Load(context.Background()))

	engine.BeginCreate()
	engine.UpdateDraftField("quantity", "50")

	require.NoError(t, engine.BeginEdit(1))
	assert.Equal(t, "1", engine.Draft()["quantity"], "entering edit fully overwrites the draft")
}

func TestSubmit_RequiredBlank_NeverTouchesNetwork(t *testing.T) {
	engine, _, rec := newOrderEngine(t, 0)
	require.NoError(t, engine.Load(context.Background()))
	baseline := len(rec.Calls())

	engine.BeginCreate()
	err := engine.Submit(context.Background())

	require.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, FeedbackError, engine.Feedback().Kind)
	assert.Len(t, rec.Calls(), baseline, "validation failure must issue zero requests")
}

func TestSubmit_CoercionFailure_NeverTouchesNetwork(t *testing.T) {
	engine, _, rec := newOrderEngine(t, 0)
	require.NoError(t, engine.Load(context.Background()))
	baseline := len(rec.Calls())

	engine.BeginCreate()
	fillOrderDraft(engine)
	engine.UpdateDraftField("totalPrice", "lots")

	err := engine.Submit(context.Background())
	require.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "totalPrice must be a number", engine.Feedback().Message)
	assert.Len(t, rec.Calls(), baseline)
	assert.Empty(t, engine.Records(), "a parse failure must not corrupt the list store")
}

func TestSubmit_CreatePostsThenReloads(t *testing.T) {
	engine, _, rec := newOrderEngine(t, 0)
	require.NoError(t, engine.Load(context.Background()))

	engine.BeginCreate()
	fillOrderDraft(engine)

	require.NoError(t, engine.Submit(context.Background()))

	assert.Equal(t, successFeedback("Order created successfully!"), engine.Feedback())
	assert.False(t, engine.Session().Editing)
	assert.Equal(t, BlankDraft(orderFields()), engine.Draft())

	records := engine.Records()
	require.Len(t, records, 1)
	assert.Equal(t, int64(7), records[0].AccountID)
	assert.Equal(t, 19.98, records[0].TotalPrice)

	calls := rec.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, []string{"GET /orders", "POST /orders", "GET /orders"}, calls)
}

func TestSubmit_UpdatePutsToRecordPath(t *testing.T) {
	engine, _, rec := newOrderEngine(t, 1)
	require.NoError(t, engine.Load(context.Background()))

	require.NoError(t, engine.BeginEdit(1))
	engine.UpdateDraftField("quantity", "4")

	require.NoError(t, engine.Submit(context.Background()))

	assert.Equal(t, successFeedback("Order updated successfully!"), engine.Feedback())
	assert.False(t, engine.Session().Editing)
	assert.Equal(t, 4, engine.Records()[0].Quantity)
	assert.Contains(t, rec.Calls(), "PUT /orders/1")
}

func TestSubmit_RemoteRejection_KeepsSessionAndDraft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[{"id":1,"accountId":1,"catalogItemId":1,"quantity":1,"totalPrice":5,"status":"PENDING"}]`)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, "Order rejected")
	}))
	defer server.Close()

	client := api.NewClient(2*time.Second, zap.NewNop())
	engine := NewEngine(orderConfig(server.URL), client, zap.NewNop())
	require.NoError(t, engine.Load(context.Background()))

	require.NoError(t, engine.BeginEdit(1))
	engine.UpdateDraftField("quantity", "4")

	err := engine.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, errorFeedback("Order rejected"), engine.Feedback(), "server-provided message wins")
	assert.True(t, engine.Session().Editing, "a failed submit keeps the session for retry")
	assert.Equal(t, "4", engine.Draft()["quantity"])
}

func TestRemove_ReportsStaleEditSession(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 2)
	require.NoError(t, engine.Load(context.Background()))
	require.NoError(t, engine.BeginEdit(2))

	stale, err := engine.Remove(context.Background(), 2)
	require.NoError(t, err)

	assert.True(t, stale)
	// deliberate: the session still points at the deleted record
	assert.True(t, engine.Session().Editing)
	assert.Equal(t, int64(2), engine.Session().ID)
	assert.Equal(t, successFeedback("Order deleted successfully!"), engine.Feedback())
	assert.Len(t, engine.Records(), 1)
}

func TestRemove_UnrelatedRecord(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 2)
	require.NoError(t, engine.Load(context.Background()))
	require.NoError(t, engine.BeginEdit(1))

	stale, err := engine.Remove(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, stale)
	assert.True(t, engine.Session().Editing)
}

func TestRemove_Failure(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 1)
	require.NoError(t, engine.Load(context.Background()))

	_, err := engine.Remove(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, errorFeedback("Order not found"), engine.Feedback())
	assert.Len(t, engine.Records(), 1)
}

func TestTransition_ConfirmReloadsStatusFromServer(t *testing.T) {
	engine, _, rec := newOrderEngine(t, 1)
	require.NoError(t, engine.Load(context.Background()))

	assert.True(t, engine.Available(domain.ActionConfirm, 1))

	require.NoError(t, engine.Transition(context.Background(), domain.ActionConfirm, 1))

	assert.Equal(t, domain.OrderStatusConfirmed, engine.Records()[0].Status)
	assert.Equal(t, successFeedback("Order status updated successfully!"), engine.Feedback())
	assert.False(t, engine.Available(domain.ActionConfirm, 1))
	assert.Contains(t, rec.Calls(), "PATCH /orders/1/status")
}

func TestTransition_FailureDoesNotMutateLocally(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[{"id":1,"accountId":1,"catalogItemId":1,"quantity":1,"totalPrice":5,"status":"PENDING"}]`)
		default:
			w.WriteHeader(http.StatusConflict)
			fmt.Fprint(w, "Order not ready")
		}
	}))
	defer server.Close()

	client := api.NewClient(2*time.Second, zap.NewNop())
	engine := NewEngine(orderConfig(server.URL), client, zap.NewNop())
	require.NoError(t, engine.Load(context.Background()))

	err := engine.Transition(context.Background(), domain.ActionConfirm, 1)
	require.Error(t, err)

	assert.Equal(t, domain.OrderStatusPending, engine.Records()[0].Status,
		"the client never mutates status locally")
	assert.Equal(t, errorFeedback("Order not ready"), engine.Feedback())
}

func TestTransition_UnknownAction(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 1)
	require.NoError(t, engine.Load(context.Background()))

	err := engine.Transition(context.Background(), "ship", 1)
	assert.Error(t, err)
}

func TestAvailable(t *testing.T) {
	engine, store, _ := newOrderEngine(t, 1)
	require.NoError(t, engine.Load(context.Background()))

	assert.True(t, engine.Available(domain.ActionConfirm, 1))
	assert.False(t, engine.Available(domain.ActionConfirm, 42), "missing record")
	assert.False(t, engine.Available("ship", 1), "unknown action")

	store.SetOrderStatus(1, domain.OrderStatusShipped)
	require.NoError(t, engine.Load(context.Background()))
	assert.False(t, engine.Available(domain.ActionConfirm, 1))
}

func TestBeginCreate_ClearsFeedbackAndResetsDraft(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 1)
	require.NoError(t, engine.Load(context.Background()))

	engine.BeginCreate()
	engine.Submit(context.Background()) // fails validation, sets feedback
	require.Equal(t, FeedbackError, engine.Feedback().Kind)

	engine.BeginCreate()
	assert.Equal(t, FeedbackNone, engine.Feedback().Kind)
	assert.Equal(t, BlankDraft(orderFields()), engine.Draft())
}

func TestTable_RendersFromListStoreOnly(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 2)
	require.NoError(t, engine.Load(context.Background()))

	engine.BeginCreate()
	engine.UpdateDraftField("quantity", "777")

	headers, rows := engine.Table()
	assert.Equal(t, []string{"id", "accountId", "catalogItemId", "quantity", "totalPrice", "status"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "1", rows[0][3], "the draft never feeds the table")
}

func TestUpdateDraftField_UnknownField(t *testing.T) {
	engine, _, _ := newOrderEngine(t, 0)
	err := engine.UpdateDraftField("nope", "x")
	assert.Error(t, err)
}
