package outline

import "github.com/pagemill/outliner/model"

// RejectedFragment pairs a filtered-out fragment with the human-readable
// reason the validity filter gave.
type RejectedFragment struct {
	Fragment model.Fragment
	Reason   string
}

// Report carries debug diagnostics from one build. It is populated only when
// the builder runs with debug enabled and has no influence on the result.
type Report struct {
	// TotalFragments is the number of raw fragments the source reported
	TotalFragments int

	// AcceptedFragments is the number that survived validity filtering
	AcceptedFragments int

	// Rejected lists every filtered-out fragment with its reason
	Rejected []RejectedFragment

	// ConfirmedHeaders and ConfirmedFooters are the finalized boilerplate
	// sets, when the heuristic path ran
	ConfirmedHeaders []string
	ConfirmedFooters []string

	// UsedBuiltinOutline reports whether the builtin outline short-circuited
	// the heuristic pipeline
	UsedBuiltinOutline bool
}
