package reveal

import (
	"testing"
)

func TestSample(t *testing.T) {
	parabola := CurveFunc(func(t float64) Point { return Pt(t, t*t) })

	got := Sample(parabola, 0, 4, 5)
	want := Polyline{Pt(0, 0), Pt(1, 1), Pt(2, 4), Pt(3, 9), Pt(4, 16)}
	diff(t, want, got)

	if got := Sample(parabola, 0, 4, 0); got != nil {
		t.Errorf("got %v for zero samples, want nil", got)
	}
	diff(t, Polyline{Pt(2, 4)}, Sample(parabola, 2, 3, 1))
}

func TestSampleEndpointsExact(t *testing.T) {
	// 0.1 is not representable, so t0 + (n-1)*step drifts away from t1.
	id := CurveFunc(func(t float64) Point { return Pt(t, 0) })
	const t1 = 0.7
	for _, n := range []int{2, 3, 7, 10, 99, 100} {
		p := Sample(id, 0.1, t1, n)
		if len(p) != n {
			t.Fatalf("got %d samples, want %d", len(p), n)
		}
		if p[0].X != 0.1 || p[n-1].X != t1 {
			t.Errorf("n=%d: endpoints are %v and %v, want 0.1 and %v", n, p[0].X, p[n-1].X, t1)
		}
		for i := 1; i < n; i++ {
			if p[i].X <= p[i-1].X {
				t.Errorf("n=%d: samples %d and %d aren't increasing", n, i-1, i)
			}
		}
	}
}

func TestComplexFunc(t *testing.T) {
	f := ComplexFunc(func(t float64) complex128 { return complex(t, -t) })
	diff(t, Pt(2, -2), f.Eval(2))
}

func TestBoundingBox(t *testing.T) {
	l := Line{Pt(-1, 2), Pt(3, -2)}
	diff(t, Rect{-1, -2, 3, 2}, BoundingBox(l, 0, 1, 10), rectComparer)
}
