// Package gesture interprets the geometry of a single drag gesture.
//
// It has three pieces, all free of any UI toolkit:
//
//   - [Sample]: the down point plus the latest tension-mapped point and
//     distance for the gesture in progress.
//   - [Tension]: a pure mapping from raw pointer displacement to a bounded,
//     eased displacement, written into a [Sample].
//   - [Watcher]: a hysteresis edge detector that reports, once per gesture,
//     that the mapped distance reached the outer radius.
//
// # Tension Mapping
//
// Displacements up to the inner radius pass through unchanged. Beyond it the
// radial magnitude is eased toward the outer radius and never exceeds it:
//
//	t  = min(1, (raw - inner) / (outer - inner))
//	t' = 1 - (1 - t)^(1 / (1 - factor))
//	d  = inner + (outer - inner) * t'
//
// A factor of 0 is linear; values closer to 1 saturate sooner.
//
// # No Value
//
// "No mapped position yet" is an explicit state carried by [Opt], never a
// reserved float, because 0 is a legitimate distance.
package gesture
