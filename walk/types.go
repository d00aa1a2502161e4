package walk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for an unrecognised name.
var ErrUnknownMode = errors.New("walk: unknown mode")

// Warning texts reported in Diagnostics.Warnings.
const (
	// WarnNoNodes is reported when the key has no participating nodes.
	WarnNoNodes = "no nodes"

	warnNoEdge   = "no edge found between %s and %s"
	warnSkipped  = "component %s skipped: no extractable path"
	warnNilGraph = "nil graph"
)

// Mode selects the extraction strategy.
type Mode int

const (
	// ModeAuto picks a strategy per component.
	ModeAuto Mode = iota
	// ModeEndpoint walks between degree-1 endpoints.
	ModeEndpoint
	// ModeBlockCut walks the block-cut tree.
	ModeBlockCut
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModeEndpoint:
		return "endpoint"
	case ModeBlockCut:
		return "blockcut"
	default:
		return "auto"
	}
}

// MarshalText renders the mode by name.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseMode accepts "auto", "endpoint" and "blockcut" (also "block-cut"),
// case-insensitively. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "endpoint", "endpoints":
		return ModeEndpoint, nil
	case "blockcut", "block-cut", "block_cut":
		return ModeBlockCut, nil
	}
	return ModeAuto, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Path is the walk through one connected component.
type Path struct {
	Nodes    []string `json:"nodes"`
	Edges    []string `json:"edges"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	LengthBp int64    `json:"lengthBp"`
	Mode     Mode     `json:"mode"` // strategy that produced the path
}

// Diagnostics accumulates the recoverable conditions of one extraction.
type Diagnostics struct {
	InducedNodes int      `json:"inducedNodes"`
	InducedEdges int      `json:"inducedEdges"`
	Mode         Mode     `json:"mode"` // mode requested by the caller
	Warnings     []string `json:"warnings"`
}

// Walk is the extraction result for one assembly key.
type Walk struct {
	Key         string      `json:"key"`
	Paths       []Path      `json:"paths"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Spine returns the first path, the one downstream linearization scopes to.
func (w Walk) Spine() (Path, bool) {
	if len(w.Paths) == 0 {
		return Path{}, false
	}
	return w.Paths[0], true
}
