// Package water models the rigid water molecules the optimizer moves
// around: a bare oxygen candidate attached to one hydrogen-bond anchor,
// lazily extended to an explicit TIP3P or TIP5P geometry once its
// position survives filtering, and finally flagged active or inactive by
// the shell activator.
//
// Lifecycle:
//  1. NewSpherical — oxygen-only candidate bound to an anchor.
//  2. Translate / RotateAboutAxis — in-place mutation during search.
//  3. BuildExplicit — add hydrogens (and lone pairs for TIP5P) in a
//     canonical frame; the orientation search rotates them afterwards.
//  4. SetActive — written back by the shell activator; rejected
//     candidates are dropped from the working set, never mutated further.
package water
