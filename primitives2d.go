package sdf2d

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// Circle returns the distance from p to a circle of radius r centered at the
// origin. Is exact.
func Circle(p ms2.Vec, r float32) float32 {
	return ms2.Norm(p) - r
}

// Box returns the distance from p to an axis-aligned box with half-extents b
// centered at the origin. Is exact.
func Box(p, b ms2.Vec) float32 {
	d := ms2.Sub(ms2.AbsElem(p), b)
	return ms2.Norm(ms2.MaxElem(d, ms2.Vec{})) + minf(0, maxf(d.X, d.Y))
}

// RoundedBox returns the distance from p to a box with half-extents b and a
// corner radius per quadrant. r[0] applies to the (+,+) quadrant, r[1] to
// (+,-), r[2] to (-,+) and r[3] to (-,-).
func RoundedBox(p, b ms2.Vec, r [4]float32) float32 {
	rx, ry := r[0], r[1]
	if p.X <= 0 {
		rx, ry = r[2], r[3]
	}
	if p.Y <= 0 {
		rx = ry
	}
	q := ms2.Sub(ms2.AbsElem(p), b)
	q = ms2.AddScalar(rx, q)
	return minf(maxf(q.X, q.Y), 0) + ms2.Norm(ms2.MaxElem(q, ms2.Vec{})) - rx
}

// Rhombus returns the distance from p to a rhombus with half-diagonals b
// along the axes. Is exact.
func Rhombus(p, b ms2.Vec) float32 {
	p = ms2.AbsElem(p)
	h := clampf(ndot(ms2.Sub(b, ms2.Scale(2, p)), b)/dot2(b), -1, 1)
	d := ms2.Norm(ms2.Sub(p, ms2.MulElem(ms2.Scale(0.5, b), ms2.Vec{X: 1 - h, Y: 1 + h})))
	return d * signf(p.X*b.Y+p.Y*b.X-b.X*b.Y)
}

// EquilateralTriangle returns the distance from p to the canonical
// equilateral triangle with vertices (-1,-1/sqrt3), (1,-1/sqrt3) and
// (0,2/sqrt3). Is exact.
func EquilateralTriangle(p ms2.Vec) float32 {
	const k = sqrt3
	p.X = absf(p.X) - 1
	p.Y += 1 / k
	if p.X+k*p.Y > 0 {
		p = ms2.Scale(0.5, ms2.Vec{X: p.X - k*p.Y, Y: -k*p.X - p.Y})
	}
	p.X -= clampf(p.X, -2, 0)
	return -ms2.Norm(p) * signf(p.Y)
}

// Pentagon returns the distance from p to a regular pentagon of radius r,
// flat side up. Is exact.
func Pentagon(p ms2.Vec, r float32) float32 {
	k := ms2.Vec{X: pentaKx, Y: pentaKy}
	p.X = absf(p.X)
	v := ms2.Vec{X: -k.X, Y: k.Y}
	p = ms2.Sub(p, ms2.Scale(2*minf(ms2.Dot(v, p), 0), v))
	v.X = k.X
	p = ms2.Sub(p, ms2.Scale(2*minf(ms2.Dot(v, p), 0), v))
	p = ms2.Sub(p, ms2.Vec{X: clampf(p.X, -r*pentaKz, r*pentaKz), Y: r})
	return ms2.Norm(p) * signf(p.Y)
}

// Hexagon returns the distance from p to a regular hexagon of apothem r,
// flat side up. Is exact.
func Hexagon(p ms2.Vec, r float32) float32 {
	k := ms2.Vec{X: -sqrt3 / 2, Y: 0.5}
	const kz = 0.577350269
	p = ms2.AbsElem(p)
	p = ms2.Sub(p, ms2.Scale(2*minf(ms2.Dot(k, p), 0), k))
	p = ms2.Sub(p, ms2.Vec{X: clampf(p.X, -kz*r, kz*r), Y: r})
	return ms2.Norm(p) * signf(p.Y)
}

// Octogon returns the distance from p to a regular octagon of apothem r,
// flat side up. Is exact.
func Octogon(p ms2.Vec, r float32) float32 {
	const kx, ky, kz = -0.9238795325, 0.3826834323, 0.4142135623
	v1 := ms2.Vec{X: kx, Y: ky}
	v2 := ms2.Vec{X: -kx, Y: ky}
	p = ms2.AbsElem(p)
	p = ms2.Sub(p, ms2.Scale(2*minf(ms2.Dot(v1, p), 0), v1))
	p = ms2.Sub(p, ms2.Scale(2*minf(ms2.Dot(v2, p), 0), v2))
	p = ms2.Sub(p, ms2.Vec{X: clampf(p.X, -kz*r, kz*r), Y: r})
	return ms2.Norm(p) * signf(p.Y)
}

// Hexagram returns the distance from p to a six-pointed star whose inner
// hexagon has apothem r. Is exact.
func Hexagram(p ms2.Vec, r float32) float32 {
	const kx, ky, kz, kw = -0.5, 0.8660254038, 0.5773502692, 1.7320508076
	v1 := ms2.Vec{X: kx, Y: ky}
	v2 := ms2.Vec{X: ky, Y: kx}
	p = ms2.AbsElem(p)
	p = ms2.Sub(p, ms2.Scale(2*minf(ms2.Dot(v1, p), 0), v1))
	p = ms2.Sub(p, ms2.Scale(2*minf(ms2.Dot(v2, p), 0), v2))
	p = ms2.Sub(p, ms2.Vec{X: clampf(p.X, r*kz, r*kw), Y: r})
	return ms2.Norm(p) * signf(p.Y)
}

// Star5 returns the distance from p to a five-pointed star of outer radius r
// whose inner radius is the fraction rf of r, rf in (0,1). A point lies on
// +y in shape space. Is exact.
func Star5(p ms2.Vec, r, rf float32) float32 {
	k1 := ms2.Vec{X: 0.809016994375, Y: -0.587785252292}
	k2 := ms2.Vec{X: -k1.X, Y: k1.Y}
	p.X = absf(p.X)
	p = ms2.Sub(p, ms2.Scale(2*maxf(ms2.Dot(k1, p), 0), k1))
	p = ms2.Sub(p, ms2.Scale(2*maxf(ms2.Dot(k2, p), 0), k2))
	p.X = absf(p.X)
	p.Y -= r
	ba := ms2.Sub(ms2.Scale(rf, ms2.Vec{X: -k1.Y, Y: k1.X}), ms2.Vec{Y: 1})
	h := clampf(ms2.Dot(p, ba)/dot2(ba), 0, r)
	return ms2.Norm(ms2.Sub(p, ms2.Scale(h, ba))) * signf(p.Y*ba.X-p.X*ba.Y)
}

// RoundedX returns the distance from p to an X spanning width w along each
// diagonal, inflated by radius r. Is exact.
func RoundedX(p ms2.Vec, w, r float32) float32 {
	p = ms2.AbsElem(p)
	m := 0.5 * minf(p.X+p.Y, w)
	return ms2.Norm(ms2.Sub(p, ms2.Vec{X: m, Y: m})) - r
}

// Vesica returns the distance from p to the intersection of two circles of
// radius r with centers offset d either side of the y axis, 0 < d < r.
// Is exact.
func Vesica(p ms2.Vec, r, d float32) float32 {
	p = ms2.AbsElem(p)
	b := math32.Sqrt(r*r - d*d)
	if (p.Y-b)*d > p.X*b {
		return ms2.Norm(ms2.Sub(p, ms2.Vec{Y: b}))
	}
	return ms2.Norm(ms2.Sub(p, ms2.Vec{X: -d})) - r
}

// Egg returns the distance from p to an egg with body radius ra and tip
// radius rb, rb < ra. The body is centered at the origin, the tip points
// along +y. Is exact.
func Egg(p ms2.Vec, ra, rb float32) float32 {
	const k = sqrt3
	p.X = absf(p.X)
	r := ra - rb
	var d float32
	switch {
	case p.Y < 0:
		d = ms2.Norm(p) - r
	case k*(p.X+r) < p.Y:
		d = ms2.Norm(ms2.Vec{X: p.X, Y: p.Y - k*r})
	default:
		d = ms2.Norm(ms2.Vec{X: p.X + r, Y: p.Y}) - 2*r
	}
	return d - rb
}

// Heart returns the distance from p to the canonical heart: the bottom tip
// at the origin, lobes a unit wide meeting at (0, 1). Not a true distance
// everywhere inside, the bound holds outside.
func Heart(p ms2.Vec) float32 {
	p.X = absf(p.X)
	if p.Y+p.X > 1 {
		return math32.Sqrt(dot2(ms2.Sub(p, ms2.Vec{X: 0.25, Y: 0.75}))) - math32.Sqrt2/4
	}
	d := minf(
		dot2(ms2.Sub(p, ms2.Vec{Y: 1})),
		dot2(ms2.Sub(p, ms2.Scale(0.5*maxf(p.X+p.Y, 0), ms2.Vec{X: 1, Y: 1}))),
	)
	return math32.Sqrt(d) * signf(p.X-p.Y)
}

// Poly4 returns the distance from p to the quadrilateral through the four
// vertices v. Is exact.
func Poly4(p ms2.Vec, v [4]ms2.Vec) float32 {
	return Polygon(p, v[:])
}

// Polygon returns the distance from p to the closed polygon through verts.
// Winding direction does not matter. Is exact.
// https://www.shadertoy.com/view/wdBXRW
func Polygon(p ms2.Vec, verts []ms2.Vec) float32 {
	d := dot2(ms2.Sub(p, verts[0]))
	s := float32(1.0)
	jv := len(verts) - 1
	for iv, v1 := range verts {
		v2 := verts[jv]
		e := ms2.Sub(v2, v1)
		w := ms2.Sub(p, v1)
		b := ms2.Sub(w, ms2.Scale(clampf(ms2.Dot(w, e)/dot2(e), 0, 1), e))
		d = minf(d, dot2(b))
		// winding number from http://geomalgorithms.com/a03-_inclusion.html
		b1 := p.Y >= v1.Y
		b2 := p.Y < v2.Y
		b3 := e.X*w.Y > e.Y*w.X
		if (b1 && b2 && b3) || ((!b1) && (!b2) && (!b3)) {
			s = -s
		}
		jv = iv
	}
	return s * math32.Sqrt(d)
}
