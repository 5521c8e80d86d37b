package geometry

// Shape is the capability shared by every variant in the catalog: a pure,
// side-effect-free area computation. Implementations in this package are
// immutable value types.
type Shape interface {
	// Area returns the shape's area. The result is non-negative whenever
	// the shape's dimensions are; degenerate dimensions propagate through
	// the arithmetic instead of failing (see the package documentation).
	Area() float64
}

// ShapeArea measures s through the Shape capability. It exists so callers
// holding mixed concrete variants can dispatch without a type switch.
func ShapeArea(s Shape) float64 {
	return s.Area()
}
