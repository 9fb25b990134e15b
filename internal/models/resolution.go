package models

// ResolutionState distinguishes "no ticker exists" from "the lookup broke".
type ResolutionState int

const (
	Resolved ResolutionState = iota
	Unresolved
	ResolutionFailed
)

// Resolution is the outcome of one name-to-ticker lookup.
type Resolution struct {
	State  ResolutionState
	Ticker string
	Err    error
}

func ResolvedAs(ticker string) Resolution {
	return Resolution{State: Resolved, Ticker: ticker}
}

func NoMatch() Resolution {
	return Resolution{State: Unresolved}
}

func FailedResolution(err error) Resolution {
	return Resolution{State: ResolutionFailed, Err: err}
}
