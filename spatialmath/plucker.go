package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// PluckerLine is an infinite line in 3D represented by a direction and a moment, where the moment
// is direction × p for any point p on the line.
type PluckerLine struct {
	direction r3.Vector
	moment    r3.Vector
}

// NewPluckerLine creates a line from its direction and moment vectors.
func NewPluckerLine(direction, moment r3.Vector) (*PluckerLine, error) {
	if direction.Norm2() == 0 {
		return nil, newInvalidArgumentError("line direction must be non-zero")
	}
	return &PluckerLine{direction: direction, moment: moment}, nil
}

// NewPluckerLineFromPoints creates the line passing through p1 and p2, directed from p1 to p2.
func NewPluckerLineFromPoints(p1, p2 r3.Vector) (*PluckerLine, error) {
	d := p2.Sub(p1)
	if d.Norm2() == 0 {
		return nil, newInvalidArgumentError("points %v and %v do not define a line", p1, p2)
	}
	return &PluckerLine{direction: d, moment: d.Cross(p1)}, nil
}

// Direction returns the direction vector of the line. It is not necessarily unit length.
func (l *PluckerLine) Direction() r3.Vector {
	return l.direction
}

// Moment returns the moment vector of the line.
func (l *PluckerLine) Moment() r3.Vector {
	return l.moment
}

// ClosestPoint returns the point on the line closest to the origin.
func (l *PluckerLine) ClosestPoint() r3.Vector {
	return l.moment.Cross(l.direction).Mul(1 / l.direction.Norm2())
}

// Distance returns the perpendicular distance from p to the line.
func (l *PluckerLine) Distance(p r3.Vector) float64 {
	return l.direction.Cross(p).Sub(l.moment).Norm() / l.direction.Norm()
}

// Contains reports whether p lies within tol of the line.
func (l *PluckerLine) Contains(p r3.Vector, tol float64) bool {
	return l.Distance(p) <= tol
}

// Reciprocal returns the permuted inner product of two lines. It is zero when the lines are
// coplanar, i.e. when they intersect or are parallel.
func (l *PluckerLine) Reciprocal(other *PluckerLine) float64 {
	return l.direction.Dot(other.moment) + other.direction.Dot(l.moment)
}

// String returns a human readable form of the line.
func (l *PluckerLine) String() string {
	return fmt.Sprintf("{ %s ; %s }", formatVector(l.direction), formatVector(l.moment))
}
