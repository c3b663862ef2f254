package domain

// PassState is a state of the generation pass state machine.
type PassState int32

const (
	// PassIdle means no pass is running.
	PassIdle PassState = iota
	// PassScanning means eligible types are being discovered and grouped.
	PassScanning
	// PassWriting means artifacts are being rendered and persisted.
	PassWriting
)

// String returns the state name.
func (s PassState) String() string {
	switch s {
	case PassIdle:
		return "idle"
	case PassScanning:
		return "scanning"
	case PassWriting:
		return "writing"
	default:
		return "unknown"
	}
}

// RootResult is the outcome of writing one root's artifact.
type RootResult struct {
	Root        string
	Path        string
	Fingerprint string
	Types       int
	Changed     bool
	Err         error
}

// PassReport summarizes one generation pass.
type PassReport struct {
	Roots []RootResult
	// Changed is true when at least one artifact was persisted.
	Changed bool
	// Refreshed is true when the host refresh signal was emitted.
	Refreshed bool
}

// Failed returns the roots whose artifact could not be written.
func (r *PassReport) Failed() []RootResult {
	var failed []RootResult
	for _, root := range r.Roots {
		if root.Err != nil {
			failed = append(failed, root)
		}
	}
	return failed
}
