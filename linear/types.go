package linear

// Segment is one spine node placed on the linear coordinate.
type Segment struct {
	ID       string  `json:"id"`
	Index    int     `json:"index"`
	BpStart  int64   `json:"bpStart"`
	BpEnd    int64   `json:"bpEnd"`
	LengthBp int64   `json:"lengthBp"`
	PxStart  float64 `json:"pxStart"`
	PxEnd    float64 `json:"pxEnd"`
}

// Anchor is the spine attachment of a feature. The span is the half-open
// interval [SpanStart, SpanEnd) from the start of L to the end of R.
type Anchor struct {
	LeftID     string `json:"leftId"`
	RightID    string `json:"rightId"`
	LeftIndex  int    `json:"leftIndex"`
	RightIndex int    `json:"rightIndex"`
	SpanStart  int64  `json:"spanStart"`
	SpanEnd    int64  `json:"spanEnd"`
	RefLenBp   int64  `json:"refLenBp"`
}

// AltPath is one alternate route. Nodes lists the interior only; Edges
// runs from L to R.
type AltPath struct {
	Nodes    []string `json:"nodes"`
	Edges    []string `json:"edges"`
	AltLenBp int64    `json:"altLenBp"`
}

// AltStats summarises the sampled routes of a feature.
type AltStats struct {
	Count       int   `json:"count"`
	MinAltLenBp int64 `json:"minAltLenBp"`
	MaxAltLenBp int64 `json:"maxAltLenBp"`
}

// Relations links a feature to the others; empty fields mean none.
type Relations struct {
	ParentID          string   `json:"parentId,omitempty"`
	ChildrenIDs       []string `json:"childrenIds,omitempty"`
	OverlapGroupID    string   `json:"overlapGroupId,omitempty"`
	SameAnchorGroupID string   `json:"sameAnchorGroupId,omitempty"`
}

// Feature is an alternate path between two spine nodes.
type Feature struct {
	ID        string    `json:"id"`
	Anchor    Anchor    `json:"anchor"`
	AltPaths  []AltPath `json:"altPaths"`
	Stats     AltStats  `json:"stats"`
	AltLenBp  int64     `json:"altLenBp"` // of the first (minimum-hop) route
	Delta     int64     `json:"delta"`
	Sign      int       `json:"sign"`
	Lane      int       `json:"lane"`
	Offset    float64   `json:"offset"`
	Pill      bool      `json:"pill"`
	PillWidth float64   `json:"pillWidth,omitempty"`
	Relations Relations `json:"relations"`
}

// Span returns the anchor interval.
func (f Feature) Span() (start, end int64) { return f.Anchor.SpanStart, f.Anchor.SpanEnd }

// Diagnostics reports what Linearize looked at and anything it ignored.
type Diagnostics struct {
	SpineNodes int      `json:"spineNodes"`
	Pairs      int      `json:"pairs"`    // candidate pairs considered
	Searches   int      `json:"searches"` // BFS runs issued
	Warnings   []string `json:"warnings"`
}

// Result is the linearization of one walk.
type Result struct {
	Key         string      `json:"key"`
	Segments    []Segment   `json:"segments"`
	Features    []Feature   `json:"features"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// LengthBp is the spine length covered by the segments.
func (r Result) LengthBp() int64 {
	if len(r.Segments) == 0 {
		return 0
	}
	return r.Segments[len(r.Segments)-1].BpEnd - r.Segments[0].BpStart
}
