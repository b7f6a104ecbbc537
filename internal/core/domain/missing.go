package domain

import "sort"

// MissingSources accumulates dependencies whose source code could not be
// located on disk. Records are never discarded; the aggregate is reported at
// the end of a run without affecting the exit code.
type MissingSources struct {
	records map[SourceIdentity]struct{}
}

// NewMissingSources returns an empty accumulator.
func NewMissingSources() *MissingSources {
	return &MissingSources{records: make(map[SourceIdentity]struct{})}
}

// Add records a missing source. Duplicates collapse.
func (m *MissingSources) Add(id SourceIdentity) {
	m.records[id] = struct{}{}
}

// Empty reports whether anything was recorded.
func (m *MissingSources) Empty() bool {
	return len(m.records) == 0
}

// List returns the records sorted by their display form, for a stable report.
func (m *MissingSources) List() []SourceIdentity {
	out := make([]SourceIdentity, 0, len(m.records))
	for id := range m.records {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
