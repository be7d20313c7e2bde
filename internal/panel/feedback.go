package panel

type FeedbackKind string

const (
	FeedbackNone    FeedbackKind = ""
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

// Feedback is the single transient message slot. A new message always
// replaces the previous one; nothing is queued.
type Feedback struct {
	Kind    FeedbackKind
	Message string
}

func successFeedback(message string) Feedback {
	return Feedback{Kind: FeedbackSuccess, Message: message}
}

func errorFeedback(message string) Feedback {
	return Feedback{Kind: FeedbackError, Message: message}
}
