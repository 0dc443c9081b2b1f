// Package display implements the CHIP-8 64x32 monochrome pixel grid
// and its XOR-write primitive.
package display

const (
	// Width is the number of columns in the display grid.
	Width = 64
	// Height is the number of rows in the display grid.
	Height = 32
)

// Buffer is a 64x32 monochrome cell grid, row-major. The zero value is
// a cleared display.
type Buffer struct {
	cells [Width * Height]bool
}

// XORPixel reduces x and y modulo the grid dimensions (wrap-around
// addressing), XORs set into the addressed cell, and reports whether
// the cell went from set to unset as a result (a sprite collision).
func (b *Buffer) XORPixel(x, y int, set bool) bool {
	idx := index(x, y)
	was := b.cells[idx]
	b.cells[idx] = was != set
	return was && set
}

// Clear sets every cell to false.
func (b *Buffer) Clear() {
	b.cells = [Width * Height]bool{}
}

// Pixels returns a read-only snapshot of the grid for rasterization.
func (b *Buffer) Pixels() [Width * Height]bool {
	return b.cells
}

func index(x, y int) int {
	col := ((x % Width) + Width) % Width
	row := ((y % Height) + Height) % Height
	return row*Width + col
}
