package fiuu

const (
	StatusSuccess    = "00"
	StatusFailed     = "11"
	StatusPending    = "22"
	StatusProcessing = "33"
)

type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Terminal reports whether the outcome settles the payment.
func (o Outcome) Terminal() bool {
	return o == OutcomeSuccess || o == OutcomeFailed
}

// Classify maps a gateway status code to an outcome. Anything that is not exactly "00" or
// "11" is pending: an unknown code is never treated as a payment.
func Classify(status string) Outcome {
	switch status {
	case StatusSuccess:
		return OutcomeSuccess
	case StatusFailed:
		return OutcomeFailed
	default:
		return OutcomePending
	}
}

var descriptions = map[string]string{
	StatusSuccess:    "Successful",
	StatusFailed:     "Failed",
	StatusPending:    "Pending",
	StatusProcessing: "Processing/Incomplete",
}

func Describe(status string) string {
	if d, ok := descriptions[status]; ok {
		return d
	}

	return "Unknown"
}
