package geometry

import "testing"

func BenchmarkCircleArea(b *testing.B) {
	c := NewCircle(2.5)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = c.Area()
	}
	_ = sink
}

func BenchmarkTriangleArea(b *testing.B) {
	tr := NewTriangle(3, 4, 5)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = tr.Area()
	}
	_ = sink
}

func BenchmarkShapeAreaDispatch(b *testing.B) {
	shapes := []Shape{
		NewCircle(1),
		NewRect(3, 4),
		NewSquare(2),
		NewTriangle(3, 4, 5),
	}
	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = ShapeArea(shapes[i%len(shapes)])
	}
	_ = sink
}
