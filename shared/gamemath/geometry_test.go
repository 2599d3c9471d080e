package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectionDepth(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Vec
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 10, 10}, Vec{}},
		{"touching edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, Vec{}},
		{"a left of b", Rect{0, 0, 10, 10}, Rect{8, 0, 10, 10}, Vec{-2, -10}},
		{"a right of b", Rect{8, 0, 10, 10}, Rect{0, 0, 10, 10}, Vec{2, -10}},
		{"a resting into floor", Rect{0, 25, 10, 10}, Rect{0, 32, 32, 32}, Vec{-10, -3}},
		{"a below b", Rect{0, 9, 10, 10}, Rect{0, 0, 10, 10}, Vec{-10, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntersectionDepth(tt.a, tt.b))
		})
	}
}

func TestIntersectionDepthIsNotMinimumTranslation(t *testing.T) {
	// Both axes are reported even though only one would be needed.
	d := IntersectionDepth(Rect{0, 0, 32, 32}, Rect{4, 30, 32, 32})
	assert.Equal(t, -28.0, d.X)
	assert.Equal(t, -2.0, d.Y)
}

func TestCircleIntersectsRect(t *testing.T) {
	r := Rect{0, 0, 20, 20}
	tests := []struct {
		name string
		c    Circle
		want bool
	}{
		{"far away", Circle{Vec{50, 50}, 5}, false},
		{"overlapping right edge", Circle{Vec{24, 10}, 5}, true},
		{"exactly radius away", Circle{Vec{25, 10}, 5}, false},
		{"near corner inside radius", Circle{Vec{23, 23}, 5}, true},
		{"near corner outside radius", Circle{Vec{24, 24}, 5}, false},
		{"center on boundary", Circle{Vec{20, 10}, 5}, false},
		{"center inside", Circle{Vec{10, 10}, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CircleIntersectsRect(tt.c, r))
		})
	}
}

func TestRectHelpers(t *testing.T) {
	door := Rect{64, 32, 32, 38}
	assert.Equal(t, Point{80, 51}, door.Center())
	assert.True(t, door.Contains(Point{64, 32}))
	assert.False(t, door.Contains(Point{96, 40}))
	assert.Equal(t, Vec{16, 64}, BottomCenter(Rect{0, 32, 32, 32}))
	assert.True(t, Rect{0, 0, 10, 10}.Intersects(Rect{9, 9, 5, 5}))
	assert.False(t, Rect{0, 0, 10, 10}.Intersects(Rect{10, 0, 5, 5}))
}

func TestJumpVelocity(t *testing.T) {
	assert.InDelta(t, -3500.0, JumpVelocity(-3500, 0, 0.35, 0.14), 1e-9)
	assert.InDelta(t, 0.0, JumpVelocity(-3500, 0.35, 0.35, 0.14), 1e-9)
	mid := JumpVelocity(-3500, 0.175, 0.35, 0.14)
	assert.Less(t, mid, 0.0)
	assert.Greater(t, mid, -3500.0)
}

func TestApplyDrag(t *testing.T) {
	assert.InDelta(t, 48.0, ApplyDrag(100, true, 0.48, 0.58, 1750), 1e-9)
	assert.InDelta(t, 58.0, ApplyDrag(100, false, 0.48, 0.58, 1750), 1e-9)
	assert.Equal(t, -1750.0, ApplyDrag(-10000, false, 0.48, 0.58, 1750))
}
