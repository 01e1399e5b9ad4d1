package reveal

import "testing"

func TestSizeFit(t *testing.T) {
	tests := []struct {
		sz, into Size
		want     float64
	}{
		{Sz(9.6, 4.2), Sz(960, 840), 100},
		{Sz(2, 4), Sz(10, 10), 2.5},
		{Sz(1, 1), Sz(3, 3), 3},
	}
	for _, tt := range tests {
		if got := tt.sz.Fit(tt.into); !approxEqual(got, tt.want) {
			t.Errorf("%v.Fit(%v) = %v, want %v", tt.sz, tt.into, got, tt.want)
		}
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(Pt(3, 2), Sz(14, 8))
	diff(t, Rect{-4, -2, 10, 6}, r)
	diff(t, Sz(14, 8), r.Size())
	if s := Sz(1.5, 2).String(); s != "1.5×2" {
		t.Errorf("got %q, want %q", s, "1.5×2")
	}
}
