// Package walk extracts, for one assembly key, a representative linear walk
// through every connected component of the assembly's induced subgraph.
//
// What
//
//   - ExtractWalk(g, key, mode): one Path per component, ordered by the
//     component's smallest node id.
//   - ExtractAllWalks(g, keys, mode): the same over many keys, run in parallel,
//     returned in sorted key order.
//
// Modes
//
//   - ModeEndpoint: search from one degree-1 node to another under strict
//     port legality, falling back to relaxed ports.
//   - ModeBlockCut: walk the block-cut tree between two extremal leaf blocks,
//     taking a shortest path through every block on the way.
//   - ModeAuto: per component, endpoint mode when the component is chain-like
//     (exactly two degree-1 nodes, max degree ≤ 2, edges ≤ nodes), else
//     block-cut mode.
//
// A mode that yields nothing falls back to the other one; a component neither
// can walk is skipped with a warning. Recoverable conditions are reported in
// Walk.Diagnostics, never as errors.
//
// Determinism
//
//	Ties are always broken by node id (and by block order inside the
//	block-cut tree), so repeated calls return identical walks.
package walk
