package twinblade

// FogGrid records which tiles the player has seen. Cells only ever flip
// from hidden to revealed until Reset.
type FogGrid struct {
	w, h     int
	revealed []bool
}

// NewFog creates an all-hidden fog grid.
func NewFog(w, h int) *FogGrid {
	return &FogGrid{w: w, h: h, revealed: make([]bool, w*h)}
}

// Revealed reports whether (tx, ty) has been seen. Off-grid is hidden.
func (f *FogGrid) Revealed(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= f.w || ty >= f.h {
		return false
	}
	return f.revealed[ty*f.w+tx]
}

// Reveal uncovers every tile within radius (inclusive, in tiles) of (cx, cy)
// and returns how many were newly revealed.
func (f *FogGrid) Reveal(cx, cy, radius int) int {
	n := 0
	r2 := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || y < 0 || x >= f.w || y >= f.h {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			if i := y*f.w + x; !f.revealed[i] {
				f.revealed[i] = true
				n++
			}
		}
	}
	return n
}

// Count returns the number of revealed cells.
func (f *FogGrid) Count() int {
	n := 0
	for _, r := range f.revealed {
		if r {
			n++
		}
	}
	return n
}

// Reset hides every cell.
func (f *FogGrid) Reset() {
	clear(f.revealed)
}

// Rows returns a copy of the grid as rows of booleans.
func (f *FogGrid) Rows() [][]bool {
	rows := make([][]bool, f.h)
	for y := range rows {
		rows[y] = make([]bool, f.w)
		copy(rows[y], f.revealed[y*f.w:(y+1)*f.w])
	}
	return rows
}
