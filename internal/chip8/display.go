package chip8

// Display is a rectangular 1-bit framebuffer with XOR sprite blitting
// and collision detection.
type Display struct {
	width, height int
	wrap          bool
	pixels        []bool
}

// NewDisplay constructs an empty (all-off) framebuffer of the given
// size. wrap selects whether out-of-bounds sprite pixels wrap around
// the edges (true) or are clipped (false).
func NewDisplay(width, height uint8, wrap bool) *Display {
	return &Display{
		width:  int(width),
		height: int(height),
		wrap:   wrap,
		pixels: make([]bool, int(width)*int(height)),
	}
}

// Width returns the framebuffer width in pixels.
func (d *Display) Width() int { return d.width }

// Height returns the framebuffer height in pixels.
func (d *Display) Height() int { return d.height }

// Clear turns every pixel off.
func (d *Display) Clear() {
	for i := range d.pixels {
		d.pixels[i] = false
	}
}

// ApplySprite XORs an 8-pixel-wide, len(sprite)-row-tall sprite onto
// the framebuffer starting at (xStart, yStart), and reports whether
// any pixel transitioned from on to off (the DRW collision flag).
//
// The starting coordinate is always wrapped into bounds regardless of
// the wrap setting; only per-pixel overflow during the blit obeys it.
func (d *Display) ApplySprite(xStart, yStart uint8, sprite []byte) bool {
	x0 := int(xStart) % d.width
	y0 := int(yStart) % d.height

	collision := false
	for dy, m := range sprite {
		y := y0 + dy
		for dx := 0; dx < 8; dx++ {
			x := x0 + dx

			if d.wrap {
				x %= d.width
				y %= d.height
			} else if x >= d.width || y >= d.height {
				continue
			}

			bit := (m>>(7-dx))&0x1 == 1
			old := d.at(x, y)
			lit := old != bit
			d.set(x, y, lit)
			if old && !lit {
				collision = true
			}
		}
	}
	return collision
}

// VisiblePixels returns the coordinates of every on pixel, in raster
// order (row-major, top to bottom, left to right).
func (d *Display) VisiblePixels() []Point {
	var points []Point
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if d.at(x, y) {
				points = append(points, Point{X: uint8(x), Y: uint8(y)})
			}
		}
	}
	return points
}

// Point is an on-screen pixel coordinate.
type Point struct {
	X, Y uint8
}

func (d *Display) index(x, y int) int {
	return y*d.width + x
}

func (d *Display) at(x, y int) bool {
	return d.pixels[d.index(x, y)]
}

func (d *Display) set(x, y int, v bool) {
	d.pixels[d.index(x, y)] = v
}
