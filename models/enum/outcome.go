package enum

type Outcome string

const (
	OutcomeSuccess       Outcome = "success"
	OutcomeNotConfigured Outcome = "not_configured"
	OutcomeFailed        Outcome = "failed"
)
