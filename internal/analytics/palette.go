package analytics

import (
	"fmt"
	"math"
)

// Five gradient pairs cycled by index; each pair interpolates from a
// saturated start toward its pastel end as index/total grows.
var gradientPairs = [5][2][3]int{
	{{255, 102, 102}, {255, 178, 178}},
	{{102, 204, 255}, {178, 229, 255}},
	{{102, 255, 178}, {178, 255, 229}},
	{{255, 153, 102}, {255, 204, 178}},
	{{153, 102, 255}, {204, 178, 255}},
}

const paletteAlpha = 0.7

// RGBA is a resolved chart color
type RGBA struct {
	R, G, B int
	A       float64
}

// String renders the color in the rgba() form charting libraries accept
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// ColorFor deterministically maps a group's ordinal position and the total
// group count to a distinct color. Same (index, total) always yields the
// same color, which keeps legends stable across re-renders.
func ColorFor(index, total int) RGBA {
	pair := gradientPairs[index%len(gradientPairs)]

	t := 0.0
	if total != 0 {
		t = float64(index) / float64(total)
	}

	return RGBA{
		R: interpolate(pair[0][0], pair[1][0], t),
		G: interpolate(pair[0][1], pair[1][1], t),
		B: interpolate(pair[0][2], pair[1][2], t),
		A: paletteAlpha,
	}
}

func interpolate(start, end int, factor float64) int {
	return int(math.Round(float64(start) + float64(end-start)*factor))
}
