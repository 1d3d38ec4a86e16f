package sizing

import (
	"errors"
	"fmt"
)

// TierResult is the result of one tier of a chain. Exactly one of Outcome
// and Error is set.
type TierResult struct {
	Outcome *Outcome `json:"outcome,omitempty"`
	Error   string   `json:"error,omitempty"`
	err     error
}

func (r TierResult) Err() error { return r.err }

// EvaluateChain sizes tiers from the supply downwards. Every tier after the
// first is fed from the far end of the tier above it, keeping its own
// nominal voltage. A tier that fails or finds no size blocks the tiers
// below it with ErrUpstreamUnresolved, never the ones above.
func EvaluateChain(tiers []Circuit) []TierResult {
	out := make([]TierResult, len(tiers))
	var upstream *Outcome
	var upstreamErr error
	for i, t := range tiers {
		if i > 0 {
			if upstreamErr != nil {
				out[i] = failed(fmt.Errorf("%w: tier %d: %v", ErrUpstreamUnresolved, i, upstreamErr))
				continue
			}
			src, err := upstream.Downstream()
			if err != nil {
				upstreamErr = err
				out[i] = failed(err)
				continue
			}
			t.Source = src.AtVoltage(t.nominalVoltage())
		}
		o, err := Evaluate(t)
		if err != nil {
			upstreamErr = err
			out[i] = failed(err)
			continue
		}
		upstream = o
		out[i] = TierResult{Outcome: o}
	}
	return out
}

func failed(err error) TierResult {
	return TierResult{Error: err.Error(), err: err}
}

// Blocked reports whether the tier failed only because a tier above it did.
func (r TierResult) Blocked() bool { return errors.Is(r.err, ErrUpstreamUnresolved) }
