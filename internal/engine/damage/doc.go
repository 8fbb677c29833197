// Package damage is the damage-resolution engine. Everything here is a pure
// function of its inputs: no I/O, no logging, no shared mutable state.
//
// A loadout is first folded into an OffensiveStats bundle with Aggregate, then
// resolved against each target with a Calculator (or the package level
// Resolve/ResolveAll, which use DefaultCoefficients).
package damage
