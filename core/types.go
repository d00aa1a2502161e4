// Package core defines the signed-id Node, the port-annotated Edge and the
// immutable Graph, along with the records they are built from.
//
// Errors:
//
//	ErrNilDocument  - Build received no document.
//	ErrMalformedID  - a node or edge endpoint id lacks a single trailing sign.
//	ErrNodeNotFound - a query referenced a node that is not in the graph.
package core

import (
	"errors"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilDocument indicates that Build was called without a document.
	ErrNilDocument = errors.New("core: graph document is nil")

	// ErrMalformedID indicates a signed id that is not "<bareId><sign>".
	ErrMalformedID = errors.New("core: malformed signed id")

	// ErrNodeNotFound indicates a query referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Sign is the orientation character of a signed id.
type Sign byte

const (
	// Plus marks the forward orientation.
	Plus Sign = '+'
	// Minus marks the reverse orientation.
	Minus Sign = '-'
)

// String returns the sign character.
func (s Sign) String() string { return string(s) }

// Opposite returns the other orientation.
func (s Sign) Opposite() Sign {
	if s == Plus {
		return Minus
	}
	return Plus
}

// Port names the extremity of a node an edge attaches to.
type Port uint8

const (
	// PortNone is the zero value and never appears on a constructed edge.
	PortNone Port = iota
	// PortStart is the 5' end of the oriented segment.
	PortStart
	// PortEnd is the 3' end of the oriented segment.
	PortEnd
)

// String returns "START", "END" or "NONE".
func (p Port) String() string {
	switch p {
	case PortStart:
		return "START"
	case PortEnd:
		return "END"
	default:
		return "NONE"
	}
}

// Other returns the opposite extremity. PortNone maps to itself.
func (p Port) Other() Port {
	switch p {
	case PortStart:
		return PortEnd
	case PortEnd:
		return PortStart
	default:
		return PortNone
	}
}

// MarshalText renders the port as its name.
func (p Port) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Node is one oriented sequence segment.
//
// ID is the full signed id; Bare and Sign are its parsed parts.
// LengthBp is resolved at construction (declared length, else sequence length, else 0).
// Index is a dense position in [0, NodeCount) following sorted id order.
type Node struct {
	ID         string         `json:"id"`
	Bare       string         `json:"bareId"`
	Sign       Sign           `json:"-"`
	LengthBp   int64          `json:"lengthBp"`
	Assemblies []string       `json:"assemblies,omitempty"`
	Layout     map[string]any `json:"layout,omitempty"` // opaque, passed through unchanged
	Index      int            `json:"-"`
}

// Edge is a directed adjacency record between two resolved nodes.
//
// RawFrom/RawTo keep the signed ids exactly as written in the input; From/To are
// the node ids they resolved to. FromPort/ToPort are fixed at construction.
type Edge struct {
	ID       string `json:"id"`
	From     string `json:"from"`
	To       string `json:"to"`
	RawFrom  string `json:"rawFrom,omitempty"`
	RawTo    string `json:"rawTo,omitempty"`
	FromPort Port   `json:"fromPort"`
	ToPort   Port   `json:"toPort"`
}

// Adjacency is one entry of the undirected adjacency index, seen from Self.
type Adjacency struct {
	EdgeID    string
	Other     string
	SelfPort  Port
	OtherPort Port
}

// Graph is the immutable bidirected graph produced by Build.
//
// All fields are private and populated once; methods only read them.
type Graph struct {
	nodes    map[string]*Node // signed id → node
	order    []string         // node ids in Index order (sorted)
	edges    []*Edge          // input order, dropped edges excluded
	edgeByID map[string]*Edge

	// adjacency[id] lists each incident edge once per endpoint,
	// sorted by (Other, EdgeID).
	adjacency map[string][]Adjacency

	// edgeKeys["A->B"] is the first edge recorded from A to B.
	edgeKeys map[string]string

	// assemblies[label] is the sorted list of participating node ids.
	assemblies map[string][]string
}

// Stats is a read-only snapshot of catalog sizes.
type Stats struct {
	NodeCount     int `json:"nodeCount"`
	EdgeCount     int `json:"edgeCount"`
	AssemblyCount int `json:"assemblyCount"`
	SelfLoops     int `json:"selfLoops"`
}
