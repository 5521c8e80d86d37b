// Package geometry provides a small catalog of planar shapes behind a
// single capability: computing area.
//
// # Shapes
//
// Four immutable value types implement [Shape]: [Circle], [Rect],
// [Square], and [Triangle]. Each is constructed with its dimensions and
// measured with pure arithmetic:
//
//	c := geometry.NewCircle(2)
//	a := c.Area()      // 4π
//	p := c.Perimeter() // 4π
//
// Any variant can be measured through the capability, directly or via
// [ShapeArea]:
//
//	var s geometry.Shape = geometry.NewRect(3, 4)
//	a := geometry.ShapeArea(s) // 12
//
// # Precision
//
// Area and perimeter use math.Pi, the platform's full-precision
// constant, rather than a truncated literal. Callers comparing against
// five-digit π approximations will see differences from the sixth
// decimal digit on.
//
// # Degenerate inputs
//
// Constructors store dimensions as-is; nothing is validated and nothing
// fails. Degenerate values propagate through the arithmetic: a negative
// radius squares to the same area as its absolute value, NaN dimensions
// yield NaN measurements, infinite dimensions yield +Inf, and side sets
// violating the triangle inequality drive [Triangle.Area] to NaN. Callers
// that need geometrically meaningful results are responsible for
// supplying non-negative, finite dimensions.
//
// All shapes are immutable after construction, so a single instance may
// be measured from multiple goroutines concurrently.
package geometry
