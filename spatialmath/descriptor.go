package spatialmath

import (
	"strings"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Kind names a geometric twist descriptor.
type Kind string

// Rotation and translation are synonyms for revolute and prismatic.
const (
	KindRevolute    Kind = "revolute"
	KindRotation    Kind = "rotation"
	KindPrismatic   Kind = "prismatic"
	KindTranslation Kind = "translation"
	KindHelical     Kind = "helical"
)

// Descriptor is an untyped geometric description of a twist, as found in configuration files.
//
// A revolute descriptor with only a 2-element Point is a planar rotation about that point. With a
// 3-element Direction and Point it is a rotation about that axis, turned into a helical motion if
// Pitch is set. A prismatic descriptor takes only a 2 or 3 element Direction.
type Descriptor struct {
	Kind      Kind      `json:"kind"`
	Direction []float64 `json:"direction,omitempty"`
	Point     []float64 `json:"point,omitempty"`
	Pitch     *float64  `json:"pitch,omitempty"`
}

// FromDescriptor creates the twist described by d.
func FromDescriptor(d Descriptor) (*Twist, error) {
	switch Kind(strings.ToLower(string(d.Kind))) {
	case KindRevolute, KindRotation:
		if len(d.Direction) == 0 {
			if len(d.Point) != 2 {
				return nil, newInvalidArgumentError("planar rotation needs a 2 element point, got %d", len(d.Point))
			}
			if d.Pitch != nil {
				return nil, newInvalidArgumentError("planar rotation cannot have a pitch")
			}
			return NewRevolute2D(r2.Point{X: d.Point[0], Y: d.Point[1]}), nil
		}
		a, q, err := axisAndPoint(d)
		if err != nil {
			return nil, err
		}
		if d.Pitch != nil {
			return NewHelical(a, q, *d.Pitch)
		}
		return NewRevolute(a, q)
	case KindHelical:
		if d.Pitch == nil {
			return nil, newInvalidArgumentError("helical descriptor needs a pitch")
		}
		a, q, err := axisAndPoint(d)
		if err != nil {
			return nil, err
		}
		return NewHelical(a, q, *d.Pitch)
	case KindPrismatic, KindTranslation:
		if len(d.Point) != 0 || d.Pitch != nil {
			return nil, newInvalidArgumentError("translation descriptor takes only a direction")
		}
		switch len(d.Direction) {
		case 2:
			return NewPrismatic2D(r2.Point{X: d.Direction[0], Y: d.Direction[1]})
		case 3:
			return NewPrismatic(r3.Vector{X: d.Direction[0], Y: d.Direction[1], Z: d.Direction[2]})
		default:
			return nil, newInvalidArgumentError("translation direction must have 2 or 3 elements, got %d", len(d.Direction))
		}
	default:
		return nil, newInvalidArgumentError("unknown twist descriptor kind %q", d.Kind)
	}
}

func axisAndPoint(d Descriptor) (r3.Vector, r3.Vector, error) {
	if len(d.Direction) < 3 {
		return r3.Vector{}, r3.Vector{}, newInvalidArgumentError(
			"3D rotation needs a 3 element direction, got %d; use a 2 element point alone for a planar rotation", len(d.Direction))
	}
	if len(d.Direction) != 3 || len(d.Point) != 3 {
		return r3.Vector{}, r3.Vector{}, newInvalidArgumentError(
			"3D rotation needs a 3 element direction and point, got %d and %d", len(d.Direction), len(d.Point))
	}
	return r3.Vector{X: d.Direction[0], Y: d.Direction[1], Z: d.Direction[2]},
		r3.Vector{X: d.Point[0], Y: d.Point[1], Z: d.Point[2]}, nil
}
