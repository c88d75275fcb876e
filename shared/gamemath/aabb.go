package gamemath

import (
	"fmt"
	"math"
)

// AABB is an axis-aligned bounding box stored as min/max corners.
// Y grows downward, so MinY is the top edge and MaxY the bottom edge.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// FromCenter builds a box of size w×h centred on (cx, cy).
func FromCenter(cx, cy, w, h float64) AABB {
	return AABB{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// FromRect builds a box from a top-left corner and a size.
func FromRect(x, y, w, h float64) AABB {
	return AABB{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

func (a AABB) Width() float64  { return a.MaxX - a.MinX }
func (a AABB) Height() float64 { return a.MaxY - a.MinY }

// Center returns the midpoint of the box.
func (a AABB) Center() (float64, float64) {
	return (a.MinX + a.MaxX) / 2, (a.MinY + a.MaxY) / 2
}

// Intersects reports strict overlap. Boxes that only share an edge or a
// corner do not intersect.
func (a AABB) Intersects(b AABB) bool {
	return a.MinX < b.MaxX && b.MinX < a.MaxX &&
		a.MinY < b.MaxY && b.MinY < a.MaxY
}

// OverlapsX reports strict overlap of the horizontal ranges.
func (a AABB) OverlapsX(b AABB) bool {
	return a.MinX < b.MaxX && b.MinX < a.MaxX
}

// Contains reports whether the point lies inside the box, edges included.
func (a AABB) Contains(x, y float64) bool {
	return x >= a.MinX && x <= a.MaxX && y >= a.MinY && y <= a.MaxY
}

// ContainsBox reports whether b lies entirely inside a.
func (a AABB) ContainsBox(b AABB) bool {
	return b.MinX >= a.MinX && b.MaxX <= a.MaxX &&
		b.MinY >= a.MinY && b.MaxY <= a.MaxY
}

// Union returns the smallest box covering both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// Inflate grows the box by m on every side.
func (a AABB) Inflate(m float64) AABB {
	return AABB{MinX: a.MinX - m, MinY: a.MinY - m, MaxX: a.MaxX + m, MaxY: a.MaxY + m}
}

func (a AABB) String() string {
	return fmt.Sprintf("[%.2f,%.2f → %.2f,%.2f]", a.MinX, a.MinY, a.MaxX, a.MaxY)
}

// MustFinite panics when any of the values is NaN or infinite. Used on
// positions produced by integration, where a non-finite value is a bug.
func MustFinite(what string, vals ...float64) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("gamemath: non-finite %s: %v", what, vals))
		}
	}
}
