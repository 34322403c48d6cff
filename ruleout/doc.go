// Package ruleout ties the engine together: it decides, at leaf-addition
// time, at level-close time, and at component-evaluation time, whether a
// bottleneck or MST argument proves the current extension tree redundant.
//
// The Orchestrator mirrors the enclosing depth-first extension search.
// The driver owns the search stack and the tree; per extension step it
// calls
//
//	LevelInit
//	VerticalAddLeaf     (once per candidate neighbor, may rule out)
//	VerticalClose
//	HorizontalAdd       (pairwise distances among the surviving siblings)
//	LevelClose          (after extending the tree)
//	RuleOutPeriph       (evaluate the new component)
//
// and on backtrack CompRemove and LevelRemove in strict reverse order.
// All cached state, distance levels, levelbase MSTs and component MSTs,
// is pushed and popped in lock-step with those calls; the Container
// groups it so one allocation set serves a whole search.
//
// Everything here is single-threaded: one Orchestrator with its
// Container and tree per search worker, no locks, no atomics. The
// LIFO discipline is enforced by panics, not by synchronization.
package ruleout
