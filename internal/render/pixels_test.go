package render

import (
	"image/color"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	const w, h = 3, 2
	buf := make([]byte, 4*w*h)
	alive := func(x, y int) bool { return x == y }

	fillCellsRGBA(buf, w, h, alive, color.White, color.Black)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			want := byte(0)
			if x == y {
				want = 0xff
			}
			for i := 0; i < 3; i++ {
				if buf[base+i] != want {
					t.Fatalf("pixel (%d,%d) channel %d = %#x, want %#x", x, y, i, buf[base+i], want)
				}
			}
			if buf[base+3] != 0xff {
				t.Fatalf("pixel (%d,%d) alpha = %#x, want opaque", x, y, buf[base+3])
			}
		}
	}
}
