package field

import (
	"image"
	"image/color"
	"math"
)

// DrawLine rasterizes a line with the given thickness into the buffer.
func (r *Renderer) DrawLine(x0, y0, x1, y1 int, thickness int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		r.plotThick(x0, y0, thickness, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) plotThick(x, y, thickness int, c color.RGBA) {
	if thickness <= 1 {
		r.SetPixel(x, y, c)
		return
	}
	half := thickness / 2
	for oy := -half; oy <= half; oy++ {
		for ox := -half; ox <= half; ox++ {
			r.SetPixel(x+ox, y+oy, c)
		}
	}
}

// FillRect fills an axis-aligned rectangle, clipped to the surface.
func (r *Renderer) FillRect(x, y, w, h int, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			r.SetPixel(xx, yy, c)
		}
	}
}

// FillCircle fills a disc of the given radius.
func (r *Renderer) FillCircle(cx, cy, radius int, c color.RGBA) {
	if radius < 1 {
		r.SetPixel(cx, cy, c)
		return
	}
	r2 := radius * radius
	for oy := -radius; oy <= radius; oy++ {
		for ox := -radius; ox <= radius; ox++ {
			if ox*ox+oy*oy <= r2 {
				r.SetPixel(cx+ox, cy+oy, c)
			}
		}
	}
}

// StrokeCircle draws a circle outline using the midpoint stepping walk.
func (r *Renderer) StrokeCircle(cx, cy, radius int, c color.RGBA) {
	if radius < 1 {
		r.SetPixel(cx, cy, c)
		return
	}
	steps := int(2 * math.Pi * float64(radius))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		r.SetPixel(cx+int(float64(radius)*math.Cos(a)), cy+int(float64(radius)*math.Sin(a)), c)
	}
}

// AddPixel additively blends a color into one pixel, saturating per channel.
func (r *Renderer) AddPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	i := (y*r.w + x) * 4
	r.pix[i] = satAdd(r.pix[i], c.R)
	r.pix[i+1] = satAdd(r.pix[i+1], c.G)
	r.pix[i+2] = satAdd(r.pix[i+2], c.B)
	r.pix[i+3] = 255
}

// Snapshot copies the buffer into a standard image for PNG export.
func (r *Renderer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.w, r.h))
	copy(img.Pix, r.pix)
	return img
}

func satAdd(a, b byte) byte {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return byte(s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
