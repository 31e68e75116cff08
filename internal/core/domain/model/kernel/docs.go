// Package kernel provides the core domain primitives of the tracking system.
//
// The package includes:
//   - Serial: the validated unique identifier of a unit
//   - Position: a point on the 2D tracking plane
//   - Heading: a normalized direction of travel
//   - MovementRecord: an immutable description of one displacement
//
// All types are immutable value objects built through smart constructors that
// either return a valid instance or a typed error from internal/pkg/errs.
// Zero values are invalid and detected through the constructor guard.
package kernel
