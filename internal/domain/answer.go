package domain

// Answer is the composed response for a single question.
type Answer struct {
	Answer       string
	Sources      []string
	UsedFallback bool
}

// NoInformationMessage is returned when no chunk is visible to the
// requester or the corpus has nothing relevant to say.
const NoInformationMessage = "I don't have information about that yet. Please contact your event coordinator for help."
