package geometry

import "fmt"

// Rect is a rectangular shape parameterized by width and height.
type Rect struct {
	width, height float64
}

var _ Shape = Rect{}

// NewRect returns a Rect with the given width and height, stored
// unvalidated like every dimension in this package.
func NewRect(width, height float64) Rect {
	return Rect{width: width, height: height}
}

// Width returns the width the Rect was constructed with.
func (r Rect) Width() float64 { return r.width }

// Height returns the height the Rect was constructed with.
func (r Rect) Height() float64 { return r.height }

// Area returns width·height.
func (r Rect) Area() float64 {
	return r.width * r.height
}

// Perimeter returns 2·(width+height).
func (r Rect) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

func (r Rect) String() string {
	return fmt.Sprintf("rect(%gx%g)", r.width, r.height)
}

// Square is a rectangular shape with equal sides, parameterized by its
// side length.
type Square struct {
	side float64
}

var _ Shape = Square{}

// NewSquare returns a Square with the given side length.
func NewSquare(side float64) Square {
	return Square{side: side}
}

// Side returns the side length the Square was constructed with.
func (s Square) Side() float64 { return s.side }

// Area returns side².
func (s Square) Area() float64 {
	return s.side * s.side
}

// Perimeter returns 4·side.
func (s Square) Perimeter() float64 {
	return 4 * s.side
}

func (s Square) String() string {
	return fmt.Sprintf("square(%g)", s.side)
}
