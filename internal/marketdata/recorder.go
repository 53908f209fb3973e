package marketdata

import "time"

// OutcomeOK labels a successful upstream exchange.
const OutcomeOK = "ok"

// Recorder observes completed upstream exchanges. Outcome is OutcomeOK or one
// of the Kind* labels.
type Recorder interface {
	RecordUpstreamCall(function, outcome string, latency time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordUpstreamCall(string, string, time.Duration) {}
