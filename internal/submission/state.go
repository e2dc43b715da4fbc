package submission

// Status enumerates the lifecycle of one form's submission.
type Status int

const (
	Idle Status = iota
	Pending
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the tagged value shown next to a form. Message is only set for
// Succeeded and Failed.
type State struct {
	Status  Status
	Message string
}

// Terminal reports whether the last submission has resolved.
func (s State) Terminal() bool {
	return s.Status == Succeeded || s.Status == Failed
}

const (
	DefaultNewsletterSuccess  = "Welcome to the convoy! Watch your inbox for launch updates."
	DefaultApplicationSuccess = "Application received. The build crew will be in touch soon."
	DefaultFailure            = "Something went wrong. Please try again."
)
