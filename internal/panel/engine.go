package panel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	apperrors "backoffice/internal/errors"

	"go.uber.org/zap"
)

// Session tracks what the form targets: a fresh record (idle) or an
// existing one being edited.
type Session struct {
	Editing bool
	ID      int64
}

// Config parameterizes the engine over one resource domain. The engine has
// no per-domain branches; everything domain-specific lives here.
type Config[R domain.Record] struct {
	// Key is the short panel name used in commands and logs ("accounts").
	Key string
	// Name is the display name used in feedback messages ("Account").
	Name string
	// Plural is the lowercase plural used in fetch messages ("accounts").
	Plural string

	// BasePath is the collection endpoint. CreatePath overrides where POSTs
	// go for domains with a bifurcated create endpoint; empty means BasePath.
	BasePath   string
	CreatePath string

	Fields  []FieldSpec
	ToDraft func(R) Draft

	// Status and Transitions are set only for domains with one-click
	// status actions.
	Status      func(R) string
	Transitions []domain.Transition

	// CreatedMessage overrides the default create feedback wording.
	CreatedMessage string
}

// Engine mediates between user intent, the domain's REST endpoints, and the
// panel's two local stores. All mutation happens on the caller's goroutine;
// the engine is not safe for concurrent use and does not cancel or retry
// in-flight requests.
type Engine[R domain.Record] struct {
	cfg    Config[R]
	client *api.Client
	logger *zap.Logger

	records  []R
	session  Session
	draft    Draft
	feedback Feedback
}

func NewEngine[R domain.Record](cfg Config[R], client *api.Client, logger *zap.Logger) *Engine[R] {
	if cfg.CreatePath == "" {
		cfg.CreatePath = cfg.BasePath
	}
	return &Engine[R]{
		cfg:    cfg,
		client: client,
		logger: logger.With(zap.String("panel", cfg.Key)),
		draft:  BlankDraft(cfg.Fields),
	}
}

func (e *Engine[R]) Key() string  { return e.cfg.Key }
func (e *Engine[R]) Name() string { return e.cfg.Name }

// Records returns the last-fetched snapshot. It is the only source for what
// a panel renders; the draft never feeds it.
func (e *Engine[R]) Records() []R { return e.records }

func (e *Engine[R]) Session() Session   { return e.session }
func (e *Engine[R]) Feedback() Feedback { return e.feedback }
func (e *Engine[R]) Fields() []FieldSpec {
	return e.cfg.Fields
}

func (e *Engine[R]) Draft() Draft {
	return e.draft.clone()
}

// Load replaces the list store wholesale with the server's sequence, in
// server order. On failure the previous snapshot stays available and only
// the feedback slot changes.
func (e *Engine[R]) Load(ctx context.Context) error {
	var records []R
	if err := e.client.GetJSON(ctx, e.cfg.BasePath, &records); err != nil {
		e.logger.Warn("list fetch failed", zap.Error(err))
		e.feedback = errorFeedback(fmt.Sprintf("Failed to fetch %s", e.cfg.Plural))
		return err
	}
	e.records = records
	return nil
}

// BeginCreate resets the form to a blank draft with domain defaults.
func (e *Engine[R]) BeginCreate() {
	e.session = Session{}
	e.draft = BlankDraft(e.cfg.Fields)
	e.feedback = Feedback{}
}

// BeginEdit copies the record's current remote values into a fresh draft,
// fully overwriting whatever was there.
func (e *Engine[R]) BeginEdit(id int64) error {
	record, ok := e.find(id)
	if !ok {
		return fmt.Errorf("no %s with id %d", strings.ToLower(e.cfg.Name), id)
	}
	e.draft = e.cfg.ToDraft(record)
	e.session = Session{Editing: true, ID: id}
	e.feedback = Feedback{}
	return nil
}

// UpdateDraftField stores the raw value. No validation, no network effect.
func (e *Engine[R]) UpdateDraftField(name, value string) error {
	if _, ok := e.draft[name]; !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	e.draft[name] = value
	return nil
}

// Submit validates and coerces the draft, then POSTs (create) or PUTs
// (update). Validation failure never reaches the network. A remote failure
// keeps the session so the operator can fix and retry; success resets the
// form and reloads the list.
func (e *Engine[R]) Submit(ctx context.Context) error {
	e.feedback = Feedback{}

	payload, err := buildPayload(e.cfg.Fields, e.draft)
	if err != nil {
		e.feedback = errorFeedback(err.Error())
		return err
	}

	if e.session.Editing {
		err = e.client.PutJSON(ctx, e.recordPath(e.session.ID), payload, nil)
	} else {
		err = e.client.PostJSON(ctx, e.cfg.CreatePath, payload, nil)
	}
	if err != nil {
		e.logger.Warn("submit failed", zap.Bool("editing", e.session.Editing), zap.Error(err))
		e.feedback = errorFeedback(e.messageOr(err, fmt.Sprintf("Failed to save %s", strings.ToLower(e.cfg.Name))))
		return err
	}

	if e.session.Editing {
		e.feedback = successFeedback(fmt.Sprintf("%s updated successfully!", e.cfg.Name))
	} else if e.cfg.CreatedMessage != "" {
		e.feedback = successFeedback(e.cfg.CreatedMessage)
	} else {
		e.feedback = successFeedback(fmt.Sprintf("%s created successfully!", e.cfg.Name))
	}
	e.session = Session{}
	e.draft = BlankDraft(e.cfg.Fields)

	return e.Load(ctx)
}

// Remove deletes the record. Confirmation is the caller's gate; by the time
// this runs the operator already said yes. The edit session is left alone
// even when it referenced the deleted record; the returned flag tells the
// caller that happened so it can warn.
func (e *Engine[R]) Remove(ctx context.Context, id int64) (bool, error) {
	e.feedback = Feedback{}

	if err := e.client.Delete(ctx, e.recordPath(id)); err != nil {
		e.logger.Warn("delete failed", zap.Int64("id", id), zap.Error(err))
		e.feedback = errorFeedback(e.messageOr(err, fmt.Sprintf("Failed to delete %s", strings.ToLower(e.cfg.Name))))
		return false, err
	}

	e.feedback = successFeedback(fmt.Sprintf("%s deleted successfully!", e.cfg.Name))
	staleSession := e.session.Editing && e.session.ID == id

	if err := e.Load(ctx); err != nil {
		return staleSession, err
	}
	return staleSession, nil
}

// CancelEdit drops the draft and returns the form to idle. Purely local.
func (e *Engine[R]) CancelEdit() {
	e.session = Session{}
	e.draft = BlankDraft(e.cfg.Fields)
}

func (e *Engine[R]) Actions() []string {
	actions := make([]string, 0, len(e.cfg.Transitions))
	for _, tr := range e.cfg.Transitions {
		actions = append(actions, tr.Action)
	}
	return actions
}

// Available reports whether the one-click action applies to the record's
// current status. Panels hide the control when this is false.
func (e *Engine[R]) Available(action string, id int64) bool {
	if e.cfg.Status == nil {
		return false
	}
	tr, ok := domain.FindTransition(e.cfg.Transitions, action)
	if !ok {
		return false
	}
	record, ok := e.find(id)
	if !ok {
		return false
	}
	return e.cfg.Status(record) == tr.From
}

// Transition fires the narrow status endpoint for the action. The engine
// never mutates status locally; the resulting state always comes from the
// follow-up reload, even for server-decided outcomes.
func (e *Engine[R]) Transition(ctx context.Context, action string, id int64) error {
	tr, ok := domain.FindTransition(e.cfg.Transitions, action)
	if !ok {
		return fmt.Errorf("unknown action %q for %s", action, e.cfg.Plural)
	}

	e.feedback = Feedback{}

	var err error
	switch tr.Kind {
	case domain.TransitionProcess:
		err = e.client.PostJSON(ctx, e.recordPath(id)+"/process", nil, nil)
	default:
		body := map[string]string{"status": tr.Target}
		err = e.client.PatchJSON(ctx, e.recordPath(id)+"/status", body, nil)
	}
	if err != nil {
		e.logger.Warn("transition failed",
			zap.String("action", action),
			zap.Int64("id", id),
			zap.Error(err),
		)
		e.feedback = errorFeedback(e.messageOr(err, fmt.Sprintf("Failed to %s %s", action, strings.ToLower(e.cfg.Name))))
		return err
	}

	if tr.Kind == domain.TransitionProcess {
		e.feedback = successFeedback(fmt.Sprintf("%s processed successfully!", e.cfg.Name))
	} else {
		e.feedback = successFeedback(fmt.Sprintf("%s status updated successfully!", e.cfg.Name))
	}

	return e.Load(ctx)
}

// Table renders the list store as strings for display, reusing the domain's
// draft mapping so numbers format the same way everywhere.
func (e *Engine[R]) Table() ([]string, [][]string) {
	headers := make([]string, 0, len(e.cfg.Fields)+1)
	headers = append(headers, "id")
	for _, f := range e.cfg.Fields {
		headers = append(headers, f.Name)
	}

	rows := make([][]string, 0, len(e.records))
	for _, record := range e.records {
		draft := e.cfg.ToDraft(record)
		row := make([]string, 0, len(headers))
		row = append(row, strconv.FormatInt(record.RecordID(), 10))
		for _, f := range e.cfg.Fields {
			row = append(row, draft[f.Name])
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func (e *Engine[R]) find(id int64) (R, bool) {
	for _, record := range e.records {
		if record.RecordID() == id {
			return record, true
		}
	}
	var zero R
	return zero, false
}

func (e *Engine[R]) recordPath(id int64) string {
	return fmt.Sprintf("%s/%d", e.cfg.BasePath, id)
}

// messageOr prefers the server-provided rejection text and falls back to the
// generic wording for network failures or empty bodies.
func (e *Engine[R]) messageOr(err error, generic string) string {
	if re, ok := apperrors.IsRemoteError(err); ok && re.Message != "" {
		return re.Message
	}
	return generic
}
