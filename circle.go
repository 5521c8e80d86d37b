package geometry

import (
	"fmt"
	"math"
)

// Circle is a circular shape parameterized by its radius.
type Circle struct {
	radius float64
}

var _ Shape = Circle{}

// NewCircle returns a Circle with the given radius. The radius is stored
// as-is: negative and non-finite values are accepted and flow through the
// area formula unvalidated.
func NewCircle(radius float64) Circle {
	return Circle{radius: radius}
}

// Radius returns the radius the Circle was constructed with.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·r². Because the radius is squared, a negative radius
// yields the same area as its absolute value.
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Perimeter returns the circumference 2π·r.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(r=%g)", c.radius)
}
