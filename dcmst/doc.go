// Package dcmst maintains bounded-degree minimum spanning trees under
// one-node insertion, the MST side of the rule-out engine.
//
// An Mst is a compact CSR-form tree over dense local node ids 0..n-1.
// The Builder inserts one node into an existing Mst given that node's
// adjacency costs to every present node: a single recursive pass walks
// the old tree, keeps each old edge or swaps it against the maximum edge
// on the cycle the new node would close, and emits the exact MST of the
// grown node set restricted to old tree edges plus the new star. The
// pass is linear in the tree size, which is bounded by the search's
// fan-out, so look-ahead weight queries are cheap enough for the hot
// path.
//
// The Archive stacks Msts in lock-step with the extension search. A new
// entry is first staged with AddEmptyTop, filled through the Builder,
// and then either committed or discarded; Top always refers to the last
// committed entry, so a staged entry can be abandoned on rule-out
// without disturbing the stack.
package dcmst
