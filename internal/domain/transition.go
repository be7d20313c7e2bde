package domain

const (
	// TransitionStatusPatch targets the narrow PATCH {base}/{id}/status endpoint.
	TransitionStatusPatch = "status-patch"
	// TransitionProcess targets POST {base}/{id}/process; the server picks the
	// resulting status.
	TransitionProcess = "process"
)

// Transition is a one-click status action with an enforced precondition,
// as opposed to the edit form's unconstrained status selector.
type Transition struct {
	Action string
	From   string
	Target string
	Kind   string
}

func FindTransition(transitions []Transition, action string) (Transition, bool) {
	for _, tr := range transitions {
		if tr.Action == action {
			return tr, true
		}
	}
	return Transition{}, false
}
