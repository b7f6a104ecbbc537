package domain

import "time"

// RunInfo records what a prior run produced for one dependency root. The
// stored fingerprint backs the "dependency set unchanged since last run" half
// of the library skip check; the artifact itself answers the freshness half.
type RunInfo struct {
	RootKey   string    `json:"root_key,omitzero"`
	DepSet    string    `json:"dep_set,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
