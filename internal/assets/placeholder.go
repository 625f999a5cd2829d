package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/emberlight/cigbat/internal/presentation"
)

var (
	filterColor = color.RGBA{0xd9, 0x8c, 0x3f, 0xff}
	paperColor  = color.RGBA{0xf2, 0xee, 0xe6, 0xff}
	emberColor  = color.RGBA{0xe8, 0x4a, 0x1c, 0xff}
	ashColor    = color.RGBA{0x8a, 0x86, 0x80, 0xff}
)

// Placeholder draws a cigarette whose paper length follows the tier, for
// sprite files that aren't installed.
func Placeholder(tier presentation.Tier, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	barH := max(2, size/6)
	top := (size - barH) / 2
	left := size / 12
	filterW := size / 5
	maxPaper := size - 2*left - filterW

	fill := func(x0, x1 int, c color.Color) {
		if x1 <= x0 {
			return
		}
		draw.Draw(img, image.Rect(x0, top, x1, top+barH), image.NewUniform(c), image.Point{}, draw.Src)
	}

	fill(left, left+filterW, filterColor)

	paper := maxPaper * int(tier) / int(presentation.TierFull)
	x := left + filterW
	fill(x, x+paper, paperColor)
	x += paper

	if tier == presentation.TierEmpty {
		fill(x, x+max(1, size/16), ashColor)
		return img
	}
	fill(x, x+max(1, size/16), emberColor)
	return img
}
