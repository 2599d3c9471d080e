package gamemath

// Vec is a 2D float vector used for positions and velocities.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Rect is an integer axis-aligned rectangle. Right and Bottom are exclusive.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center uses integer division, so odd sizes round toward the top-left.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.Right() && r.Y <= p.Y && p.Y < r.Bottom()
}

func (r Rect) Intersects(o Rect) bool {
	return o.Left() < r.Right() && r.Left() < o.Right() &&
		o.Top() < r.Bottom() && r.Top() < o.Bottom()
}

// BottomCenter returns the middle of the rectangle's bottom edge.
func BottomCenter(r Rect) Vec {
	return Vec{float64(r.X) + float64(r.W)/2.0, float64(r.Bottom())}
}

// IntersectionDepth returns how far a overlaps b on each axis, signed so that
// adding it to a's position pushes a out of b. Both axes are computed
// independently; the zero vector means no overlap.
func IntersectionDepth(a, b Rect) Vec {
	halfWidthA := float64(a.W) / 2.0
	halfHeightA := float64(a.H) / 2.0
	halfWidthB := float64(b.W) / 2.0
	halfHeightB := float64(b.H) / 2.0

	centerAX := float64(a.X) + halfWidthA
	centerAY := float64(a.Y) + halfHeightA
	centerBX := float64(b.X) + halfWidthB
	centerBY := float64(b.Y) + halfHeightB

	distanceX := centerAX - centerBX
	distanceY := centerAY - centerBY
	minDistanceX := halfWidthA + halfWidthB
	minDistanceY := halfHeightA + halfHeightB

	if abs(distanceX) >= minDistanceX || abs(distanceY) >= minDistanceY {
		return Vec{}
	}

	var depth Vec
	if distanceX > 0 {
		depth.X = minDistanceX - distanceX
	} else {
		depth.X = -minDistanceX - distanceX
	}
	if distanceY > 0 {
		depth.Y = minDistanceY - distanceY
	} else {
		depth.Y = -minDistanceY - distanceY
	}
	return depth
}

// Circle is a bounding circle in pixel space.
type Circle struct {
	Center Vec
	Radius float64
}

// CircleIntersectsRect reports whether c overlaps r. A center that coincides
// with its clamped point (distance exactly zero) does not count.
func CircleIntersectsRect(c Circle, r Rect) bool {
	nearestX := Clamp(c.Center.X, float64(r.Left()), float64(r.Right()))
	nearestY := Clamp(c.Center.Y, float64(r.Top()), float64(r.Bottom()))
	dx := c.Center.X - nearestX
	dy := c.Center.Y - nearestY
	distSq := dx*dx + dy*dy
	return distSq > 0 && distSq < c.Radius*c.Radius
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
