package geometry

import (
	"fmt"
	"math"
)

// Triangle is a triangular shape parameterized by its three side lengths.
type Triangle struct {
	a, b, c float64
}

var _ Shape = Triangle{}

// NewTriangle returns a Triangle with the given side lengths. Sides are
// stored as-is; a side set that violates the triangle inequality drives
// the Heron term negative and Area returns NaN.
func NewTriangle(a, b, c float64) Triangle {
	return Triangle{a: a, b: b, c: c}
}

// Sides returns the three side lengths in construction order.
func (t Triangle) Sides() (a, b, c float64) {
	return t.a, t.b, t.c
}

// Area returns the area by Heron's formula.
func (t Triangle) Area() float64 {
	s := (t.a + t.b + t.c) / 2
	return math.Sqrt(s * (s - t.a) * (s - t.b) * (s - t.c))
}

// Perimeter returns the sum of the side lengths.
func (t Triangle) Perimeter() float64 {
	return t.a + t.b + t.c
}

func (t Triangle) String() string {
	return fmt.Sprintf("triangle(%g,%g,%g)", t.a, t.b, t.c)
}
