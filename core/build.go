// File: build.go
// Role: One-shot construction of the immutable Graph from a Document.
// Determinism:
//   - Node ids are processed in sorted order; Index follows that order.
//   - Edge ids are generated from input position ("e1", "e2", ...).
//   - Ports depend only on signs, never on input ordering.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the prefix of generated edge ids.
const edgeIDPrefix = 'e'

// Build constructs an immutable Graph from doc.
//
// Implementation:
//   - Stage 1: Parse every node id (sorted order) and resolve its length.
//   - Stage 2: Assign dense indices and build the assembly index.
//   - Stage 3: Resolve each edge endpoint, derive ports, drop edges whose
//     endpoints are missing.
//   - Stage 4: Insert every surviving edge twice into the adjacency index and
//     record its "A->B" key.
//
// Endpoint resolution:
//   - The exact signed id, when present in the node set.
//   - Otherwise the node with the same bare id and the opposite sign.
//   - Otherwise the edge is dropped and counted in Problems.MissingEdgeEndpoints.
//
// Port rule:
//   - Starting end: PortEnd if the edge's sign equals the node's sign, else PortStart.
//   - Ending end:   PortStart if the edge's sign equals the node's sign, else PortEnd.
//
// Errors:
//   - ErrNilDocument if doc is nil.
//   - ErrMalformedID (wrapped with the offending node or edge) for any id that is
//     not "<bareId><sign>".
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V + E).
func Build(doc *Document) (*Graph, *Problems, error) {
	if doc == nil {
		return nil, nil, ErrNilDocument
	}

	problems := &Problems{}
	g := &Graph{
		nodes:      make(map[string]*Node, len(doc.Nodes)),
		order:      make([]string, 0, len(doc.Nodes)),
		edges:      make([]*Edge, 0, len(doc.Edges)),
		edgeByID:   make(map[string]*Edge, len(doc.Edges)),
		adjacency:  make(map[string][]Adjacency, len(doc.Nodes)),
		edgeKeys:   make(map[string]string, len(doc.Edges)),
		assemblies: make(map[string][]string),
	}

	// 1) Nodes in sorted id order.
	for id := range doc.Nodes {
		g.order = append(g.order, id)
	}
	sort.Strings(g.order)

	for i, id := range g.order {
		bare, sign, err := ParseSignedID(id)
		if err != nil {
			return nil, nil, fmt.Errorf("core: node %q: %w", id, err)
		}
		rec := doc.Nodes[id]
		n := &Node{
			ID:         id,
			Bare:       bare,
			Sign:       sign,
			LengthBp:   resolveLength(id, rec, problems),
			Assemblies: uniqueSorted(rec.Assemblies),
			Layout:     rec.Layout,
			Index:      i,
		}
		g.nodes[id] = n

		// 2) Assembly index; ids arrive sorted so each list stays sorted.
		for _, label := range n.Assemblies {
			g.assemblies[label] = append(g.assemblies[label], id)
		}
	}

	for _, label := range doc.Assemblies {
		if _, ok := g.assemblies[label]; !ok && label != "" {
			g.assemblies[label] = []string{}
		}
	}

	// 3) Edges in input order.
	for i, rec := range doc.Edges {
		eid := rec.ID
		if eid == "" {
			eid = nextEdgeID(i)
		}
		from, fromSign, err := g.resolveEndpoint(rec.From)
		if err != nil {
			return nil, nil, fmt.Errorf("core: edge %q starting node: %w", eid, err)
		}
		to, toSign, err := g.resolveEndpoint(rec.To)
		if err != nil {
			return nil, nil, fmt.Errorf("core: edge %q ending node: %w", eid, err)
		}
		if from == nil || to == nil {
			problems.MissingEdgeEndpoints++
			problems.DroppedEdges = append(problems.DroppedEdges, eid)
			continue
		}

		e := &Edge{
			ID:       eid,
			From:     from.ID,
			To:       to.ID,
			RawFrom:  rec.From,
			RawTo:    rec.To,
			FromPort: departurePort(fromSign, from.Sign),
			ToPort:   arrivalPort(toSign, to.Sign),
		}
		g.edges = append(g.edges, e)
		if _, dup := g.edgeByID[eid]; !dup {
			g.edgeByID[eid] = e
		}

		// 4) Adjacency, once per endpoint.
		g.adjacency[e.From] = append(g.adjacency[e.From], Adjacency{
			EdgeID: e.ID, Other: e.To, SelfPort: e.FromPort, OtherPort: e.ToPort,
		})
		g.adjacency[e.To] = append(g.adjacency[e.To], Adjacency{
			EdgeID: e.ID, Other: e.From, SelfPort: e.ToPort, OtherPort: e.FromPort,
		})

		key := EdgeKey(e.From, e.To)
		if _, seen := g.edgeKeys[key]; !seen {
			g.edgeKeys[key] = e.ID
		}
	}

	for id, adj := range g.adjacency {
		sort.Slice(adj, func(i, j int) bool {
			if adj[i].Other != adj[j].Other {
				return adj[i].Other < adj[j].Other
			}
			if adj[i].EdgeID != adj[j].EdgeID {
				return adj[i].EdgeID < adj[j].EdgeID
			}
			return adj[i].SelfPort < adj[j].SelfPort
		})
		g.adjacency[id] = adj
	}

	return g, problems, nil
}

// resolveLength applies the declared → sequence → zero precedence and records
// mismatches and negative declarations.
func resolveLength(id string, rec NodeRecord, problems *Problems) int64 {
	declared := int64(-1)
	if rec.Length != nil {
		if *rec.Length < 0 {
			problems.InvalidLengths = append(problems.InvalidLengths, id)
		} else {
			declared = *rec.Length
		}
	}

	derived := int64(-1)
	if rec.Sequence != nil {
		derived = int64(len(*rec.Sequence))
	}

	switch {
	case declared >= 0 && derived >= 0:
		if declared != derived {
			problems.LengthMismatches = append(problems.LengthMismatches, LengthMismatch{
				NodeID: id, Declared: declared, Derived: derived,
			})
		}
		return declared
	case declared >= 0:
		return declared
	case derived >= 0:
		return derived
	default:
		return 0
	}
}

// resolveEndpoint parses a raw edge endpoint and finds the node it refers to:
// the exact signed id, else the same bare id in the other orientation.
// A nil node with a nil error means the endpoint is missing.
func (g *Graph) resolveEndpoint(raw string) (*Node, Sign, error) {
	bare, sign, err := ParseSignedID(raw)
	if err != nil {
		return nil, 0, err
	}
	if n, ok := g.nodes[raw]; ok {
		return n, sign, nil
	}
	if n, ok := g.nodes[bare+sign.Opposite().String()]; ok {
		return n, sign, nil
	}
	return nil, sign, nil
}

// departurePort is the port an edge leaves its starting node through.
func departurePort(edgeSign, nodeSign Sign) Port {
	if edgeSign == nodeSign {
		return PortEnd
	}
	return PortStart
}

// arrivalPort is the port an edge enters its ending node through.
func arrivalPort(edgeSign, nodeSign Sign) Port {
	if edgeSign == nodeSign {
		return PortStart
	}
	return PortEnd
}

// nextEdgeID returns "e<i+1>" without going through fmt.
func nextEdgeID(i int) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendInt(buf, int64(i+1), 10)
	return string(buf)
}

// uniqueSorted returns a sorted copy of in without duplicates or empty labels.
func uniqueSorted(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
