package ui

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the region has no drawable cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inner returns the region inside a one-cell border.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// SplitH cuts the region into a left part of the given percentage and the rest.
func (r Rect) SplitH(percent int) (left, right Rect) {
	w := r.W * percent / 100
	return Rect{X: r.X, Y: r.Y, W: w, H: r.H}, Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
}

// SplitV cuts the region into a top part of the given percentage and the rest.
func (r Rect) SplitV(percent int) (top, bottom Rect) {
	h := r.H * percent / 100
	return Rect{X: r.X, Y: r.Y, W: r.W, H: h}, Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
}

// Take cuts n rows off the top of the region.
func (r Rect) Take(n int) (top, rest Rect) {
	n = min(max(n, 0), r.H)
	return Rect{X: r.X, Y: r.Y, W: r.W, H: n}, Rect{X: r.X, Y: r.Y + n, W: r.W, H: r.H - n}
}

// Center returns a w by h region centered in r, clipped to r.
func (r Rect) Center(w, h int) Rect {
	w, h = min(w, r.W), min(h, r.H)
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// CenterPercent returns a centered region sized as a percentage of r.
func (r Rect) CenterPercent(wPercent, hPercent int) Rect {
	return r.Center(r.W*wPercent/100, r.H*hPercent/100)
}

// Grid splits the region into rows x cols equal tiles in row-major order.
// Leftover cells go to the last row and column.
func (r Rect) Grid(rows, cols int) []Rect {
	tiles := make([]Rect, 0, rows*cols)
	tw, th := r.W/cols, r.H/rows
	for row := range rows {
		for col := range cols {
			t := Rect{X: r.X + col*tw, Y: r.Y + row*th, W: tw, H: th}
			if col == cols-1 {
				t.W = r.W - col*tw
			}
			if row == rows-1 {
				t.H = r.H - row*th
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}
