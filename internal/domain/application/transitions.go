package application

type Status string

const (
	StatusPending            Status = "pending"
	StatusShortlisted        Status = "shortlisted"
	StatusRejected           Status = "rejected"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusOfferExtended      Status = "offer_extended"
	StatusHired              Status = "hired"
)

// transitions is the single source of truth for the hiring pipeline.
// Missing keys are terminal states.
var transitions = map[Status][]Status{
	StatusPending:            {StatusShortlisted, StatusRejected},
	StatusShortlisted:        {StatusInterviewScheduled},
	StatusInterviewScheduled: {StatusOfferExtended},
	StatusOfferExtended:      {StatusHired},
}

// PipelineStatuses are the post-screening stages shown in the active
// pipeline view. pending and rejected are excluded.
var PipelineStatuses = []Status{StatusShortlisted, StatusInterviewScheduled, StatusOfferExtended, StatusHired}

func Known(status Status) bool {
	switch status {
	case StatusPending, StatusShortlisted, StatusRejected, StatusInterviewScheduled, StatusOfferExtended, StatusHired:
		return true
	default:
		return false
	}
}

func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsTerminal(status Status) bool {
	return Known(status) && len(transitions[status]) == 0
}

// IsScreenTarget reports whether status is a valid outcome of the
// initial screen of a pending application.
func IsScreenTarget(status Status) bool {
	return status == StatusShortlisted || status == StatusRejected
}

// IsStageTarget reports whether status is a post-shortlist stage
// reachable through Advance.
func IsStageTarget(status Status) bool {
	return status == StatusInterviewScheduled || status == StatusOfferExtended || status == StatusHired
}
