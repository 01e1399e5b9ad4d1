package reveal


// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v). Affine transforms are how
// curve coordinates, such as points on the complex plane, get mapped to the
// coordinate space of whatever draws them.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// MapRect creates an affine transformation that takes the rectangle from to
// the rectangle to, corner for corner. Neither rectangle is normalized, so
// mapping a y-up rectangle onto a y-down one flips the y axis.
//
// Produces NaN values when from has zero width or height.
func MapRect(from, to Rect) Affine {
	sx := to.Width() / from.Width()
	sy := to.Height() / from.Height()
	return Affine{
		sx, 0, 0, sy,
		to.X0 - sx*from.X0,
		to.Y0 - sy*from.Y0,
	}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

