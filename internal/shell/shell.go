package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"backoffice/internal/panel"

	"go.uber.org/zap"
)

// Panel is what the shell needs from a resource domain. All four engines
// satisfy it directly; the shell itself carries no state invariants beyond
// which panel is visible.
type Panel interface {
	Key() string
	Name() string
	Load(ctx context.Context) error
	BeginCreate()
	BeginEdit(id int64) error
	UpdateDraftField(name, value string) error
	Submit(ctx context.Context) error
	Remove(ctx context.Context, id int64) (bool, error)
	CancelEdit()
	Session() panel.Session
	Feedback() panel.Feedback
	Draft() panel.Draft
	Fields() []panel.FieldSpec
	Table() ([]string, [][]string)
	Actions() []string
	Available(action string, id int64) bool
	Transition(ctx context.Context, action string, id int64) error
}

type Shell struct {
	panels []Panel
	byKey  map[string]Panel
	active Panel
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

func New(in io.Reader, out io.Writer, logger *zap.Logger, panels ...Panel) *Shell {
	byKey := make(map[string]Panel, len(panels))
	for _, p := range panels {
		byKey[p.Key()] = p
	}
	return &Shell{
		panels: panels,
		byKey:  byKey,
		active: panels[0],
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run reads commands until EOF, quit, or context cancellation. The first
// panel is mounted immediately, which populates its list store.
func (s *Shell) Run(ctx context.Context) error {
	s.active.Load(ctx)
	s.printFeedback()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(s.out, "%s> ", s.active.Key())
		line, err := s.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		s.dispatch(ctx, fields[0], fields[1:])
	}
}

func (s *Shell) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		s.printHelp()
	case "use":
		s.cmdUse(ctx, args)
	case "list":
		s.renderTable()
	case "reload":
		s.active.Load(ctx)
		s.printFeedback()
	case "new":
		s.active.BeginCreate()
		s.renderForm()
	case "edit":
		s.cmdEdit(args)
	case "set":
		s.cmdSet(args)
	case "show":
		s.renderForm()
	case "submit":
		s.active.Submit(ctx)
		s.printFeedback()
	case "cancel":
		s.active.CancelEdit()
		fmt.Fprintln(s.out, "edit cancelled")
	case "delete":
		s.cmdDelete(ctx, args)
	default:
		if s.isAction(cmd) {
			s.cmdAction(ctx, cmd, args)
			return
		}
		fmt.Fprintf(s.out, "unknown command %q, try help\n", cmd)
	}
}

func (s *Shell) cmdUse(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: use <panel>")
		return
	}
	p, ok := s.byKey[args[0]]
	if !ok {
		keys := make([]string, 0, len(s.panels))
		for _, p := range s.panels {
			keys = append(keys, p.Key())
		}
		fmt.Fprintf(s.out, "no such panel, available: %s\n", strings.Join(keys, ", "))
		return
	}
	s.active = p
	s.active.Load(ctx)
	s.printFeedback()
	s.renderTable()
}

func (s *Shell) cmdEdit(args []string) {
	id, ok := s.parseID(args, "edit <id>")
	if !ok {
		return
	}
	if err := s.active.BeginEdit(id); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	s.renderForm()
}

func (s *Shell) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "usage: set <field> <value>")
		return
	}
	if err := s.active.UpdateDraftField(args[0], strings.Join(args[1:], " ")); err != nil {
		fmt.Fprintln(s.out, err)
	}
}

func (s *Shell) cmdDelete(ctx context.Context, args []string) {
	id, ok := s.parseID(args, "delete <id>")
	if !ok {
		return
	}

	// the yes/no gate lives here, never in the engine
	fmt.Fprintf(s.out, "Are you sure you want to delete %s %d? [y/N]: ", strings.ToLower(s.active.Name()), id)
	answer, err := s.in.ReadString('\n')
	if err != nil {
		return
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
	default:
		fmt.Fprintln(s.out, "delete aborted")
		return
	}

	stale, _ := s.active.Remove(ctx, id)
	s.printFeedback()
	if stale {
		fmt.Fprintln(s.out, "note: the deleted record was open in the edit form; cancel or submit will recreate nothing")
	}
}

func (s *Shell) cmdAction(ctx context.Context, action string, args []string) {
	id, ok := s.parseID(args, action+" <id>")
	if !ok {
		return
	}
	if !s.active.Available(action, id) {
		fmt.Fprintf(s.out, "%s is not available for %s %d\n", action, strings.ToLower(s.active.Name()), id)
		return
	}
	s.active.Transition(ctx, action, id)
	s.printFeedback()
}

func (s *Shell) isAction(cmd string) bool {
	for _, action := range s.active.Actions() {
		if action == cmd {
			return true
		}
	}
	return false
}

func (s *Shell) parseID(args []string, usage string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "usage: %s\n", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(s.out, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func (s *Shell) printFeedback() {
	fb := s.active.Feedback()
	switch fb.Kind {
	case panel.FeedbackSuccess:
		fmt.Fprintf(s.out, "OK: %s\n", fb.Message)
	case panel.FeedbackError:
		fmt.Fprintf(s.out, "ERROR: %s\n", fb.Message)
	}
}

func (s *Shell) renderTable() {
	headers, rows := s.active.Table()

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	s.printRow(headers, widths)
	for _, row := range rows {
		s.printRow(row, widths)
	}
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "(no records)")
	}
}

func (s *Shell) printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	fmt.Fprintln(s.out, strings.Join(parts, "  "))
}

func (s *Shell) renderForm() {
	session := s.active.Session()
	if session.Editing {
		fmt.Fprintf(s.out, "editing %s %d\n", strings.ToLower(s.active.Name()), session.ID)
	} else {
		fmt.Fprintf(s.out, "creating new %s\n", strings.ToLower(s.active.Name()))
	}

	draft := s.active.Draft()
	for _, f := range s.active.Fields() {
		line := fmt.Sprintf("  %s = %q", f.Name, draft[f.Name])
		if len(f.Options) > 0 {
			line += fmt.Sprintf("  (one of %s)", strings.Join(f.Options, ", "))
		}
		fmt.Fprintln(s.out, line)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `commands:
  use <panel>        switch panel (accounts, catalog, orders, payments)
  list               show the last fetched records
  reload             re-fetch the list
  new                start a blank form
  edit <id>          load a record into the form
  set <field> <v>    change a form field
  show               print the form
  submit             create or update from the form
  cancel             drop the form
  delete <id>        delete after confirmation
  quit               leave`)
	if actions := s.active.Actions(); len(actions) > 0 {
		fmt.Fprintf(s.out, "panel actions: %s <id>\n", strings.Join(actions, " <id>, "))
	}
}
