package state

// Phase enumerates the create-project submission lifecycle. The loading
// flag and toast juggling encode this implicitly in most UIs; making it an
// explicit machine keeps the stays-open vs. force-closes policy testable
// without rendering anything.
type Phase int

const (
	// PhaseIdle means no submission is running.
	PhaseIdle Phase = iota
	// PhaseSubmitting means the store call is in flight.
	PhaseSubmitting
	// PhaseSucceeded means the store returned a created project.
	PhaseSucceeded
	// PhaseFailed means the store call failed.
	PhaseFailed
)

// String implements fmt.Stringer for log output.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SubmissionState is the create-project workflow state machine:
// Idle -> Submitting -> (Succeeded | Failed) -> Idle.
// Both terminal phases return to Idle once the UI acknowledges them.
type SubmissionState struct {
	phase Phase
}

// NewSubmissionState creates a machine in PhaseIdle.
func NewSubmissionState() *SubmissionState {
	return &SubmissionState{phase: PhaseIdle}
}

// Phase returns the current phase.
func (s *SubmissionState) Phase() Phase {
	return s.phase
}

// IsSubmitting reports whether a store call is in flight.
func (s *SubmissionState) IsSubmitting() bool {
	return s.phase == PhaseSubmitting
}

// Begin transitions Idle -> Submitting. Returns false without changing
// phase when a submission is already in flight or unacknowledged: at most
// one submission runs at a time.
func (s *SubmissionState) Begin() bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.phase = PhaseSubmitting
	return true
}

// Succeed transitions Submitting -> Succeeded.
func (s *SubmissionState) Succeed() {
	if s.phase == PhaseSubmitting {
		s.phase = PhaseSucceeded
	}
}

// Fail transitions Submitting -> Failed.
func (s *SubmissionState) Fail() {
	if s.phase == PhaseSubmitting {
		s.phase = PhaseFailed
	}
}

// Acknowledge returns a terminal phase to Idle. No-op while submitting.
func (s *SubmissionState) Acknowledge() {
	if s.phase == PhaseSucceeded || s.phase == PhaseFailed {
		s.phase = PhaseIdle
	}
}
