package core

// Document is the serialization-agnostic graph description Build consumes.
//
// Nodes is keyed by signed id. Edges are applied in slice order, which only
// influences generated edge ids and Edges() order, never ports or adjacency.
// Assemblies optionally declares labels up front, so a label may be known
// even when no node participates in it.
type Document struct {
	Nodes      map[string]NodeRecord `json:"nodes" yaml:"nodes" validate:"required"`
	Edges      []EdgeRecord          `json:"edges" yaml:"edges" validate:"dive"`
	Assemblies []string              `json:"assemblies,omitempty" yaml:"assemblies,omitempty"`
}

// NodeRecord carries the raw attributes of one node.
//
// Length is authoritative when present and non-negative. Sequence is only
// consulted for its length.
type NodeRecord struct {
	Length     *int64         `json:"length,omitempty" yaml:"length,omitempty"`
	Sequence   *string        `json:"seq,omitempty" yaml:"seq,omitempty"`
	Assemblies []string       `json:"assembly,omitempty" yaml:"assembly,omitempty"`
	Layout     map[string]any `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// EdgeRecord is one directed adjacency as written in the input.
// An empty ID is replaced by a generated "e<n>".
type EdgeRecord struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	From string `json:"starting_node" yaml:"starting_node" validate:"required"`
	To   string `json:"ending_node" yaml:"ending_node" validate:"required"`
}

// LengthMismatch records a node whose declared length disagrees with the
// length of its sequence. The declared value is kept.
type LengthMismatch struct {
	NodeID   string `json:"nodeId"`
	Declared int64  `json:"declared"`
	Derived  int64  `json:"derived"`
}

// Problems accumulates recoverable construction issues.
type Problems struct {
	LengthMismatches     []LengthMismatch `json:"lengthMismatches"`
	InvalidLengths       []string         `json:"invalidLengths,omitempty"`
	MissingEdgeEndpoints int              `json:"missingEdgeEndpoints"`
	DroppedEdges         []string         `json:"droppedEdges,omitempty"`
}

// Empty reports whether no problem was recorded.
func (p *Problems) Empty() bool {
	return p == nil ||
		(len(p.LengthMismatches) == 0 && len(p.InvalidLengths) == 0 && p.MissingEdgeEndpoints == 0)
}

// Int64 returns a pointer to v. Handy for filling NodeRecord.Length.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to s. Handy for filling NodeRecord.Sequence.
func String(s string) *string { return &s }
