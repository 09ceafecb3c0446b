// Package seenset implements the ordered "seen" sets that back the BFS
// layer driver: a membership test plus a stable vertex number assigned the
// first time a state is encountered. The original source sketched this role
// as a tagged red-black tree (states.h's LiftStateRBTree, whose tag field
// and insert_tagged_data/find_tag entry points were declared but never
// implemented or wired into the decision procedures), so Tree here
// generalizes the same ordered-set role into a single generic type built
// on the sorted-slice pattern already used by package chainedge, rather
// than porting unused scaffolding.
package seenset
