// Package leveldist provides the level-indexed distance store of the
// rule-out engine: a LIFO stack of levels, each holding a fixed number of
// slots, each slot pairing a base vertex with an ordered target list and
// parallel distances.
//
// Levels mirror the depth of the extension search. A vertical level keeps,
// per candidate extension vertex, its special distances to the ancestor
// leaves; a horizontal level keeps pairwise distances among the siblings
// of one component. Both kinds live in their own Table, pushed and popped
// in lock-step with the search.
//
// Slots are filled through an empty-slot protocol because distances are
// computed one target at a time while scanning neighbors: claim the empty
// slot with EmptySlotSetBase, write into the staging slices, optionally
// drop one staged entry, then either commit with EmptySlotSetFilled or
// abandon with EmptySlotReset. The staging slices carry one extra scratch
// entry so a vertical slot can be filled with all leaves first and the
// extending base's own entry removed afterwards.
//
// Misuse of the protocol and queries for absent bases or targets panic;
// they are programming errors of the caller, not runtime conditions.
package leveldist
