// Package exttree holds the mutable state of one extension tree: the
// partial solution grown edge by edge during the enclosing depth-first
// search. The tree is owned by the search driver; the rule-out engine
// reads it constantly and writes only two well-defined parts of it — the
// bottleneck scratch cells and the equality-forbidden edge set.
//
// Mutation is strictly LIFO: every Extend is undone by exactly one
// Retract, every bottleneck mark by one clear, and every forbidden edge by
// a rollback to a previously taken mark. There is no locking anywhere: a
// Tree belongs to exactly one search worker (see the package-level note in
// extprune's root documentation).
//
// Leaves are kept in insertion order, with one subtlety the distance
// caches depend on: when a leaf is extended from, it is removed from the
// leaf list by shifting (not by swapping with the last element), so the
// relative order of the remaining leaves never changes. Per-level distance
// slots are laid out in exactly this order.
package exttree
