// Package geom provides the small 3-D vector and rotation toolkit used by
// every other hydra package: angles, dihedrals, rotation about an arbitrary
// axis, quaternion rotation, and uniform quaternion sampling.
//
// Design principles:
//   - Pure functions only: no hidden state, no allocation in hot paths.
//   - Value semantics: Vec3 and Quat are fixed-size arrays, cheap to copy.
//   - Angles are radians everywhere; callers convert at the boundary.
//
// All routines are O(1); none of them error. Degenerate inputs (zero-length
// vectors) are documented per function rather than guarded by sentinels,
// because they indicate programmer error, not user input.
package geom
