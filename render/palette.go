package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette colors.
var (
	Blue      = mustHex("#61AFEF")
	Orange    = mustHex("#D49F6E")
	Green     = mustHex("#98C379")
	Rose      = mustHex("#E06C75")
	Purple    = mustHex("#C678DD")
	Gold      = mustHex("#E5C07B")
	Cyan      = mustHex("#36AABA")
	Red       = mustHex("#BE5046")
	LightGray = mustHex("#CCCCCC")
)

// windowColors cycle over consecutive windows of an epoch plot.
var windowColors = []color.Color{Blue, Orange, Green, Rose, Purple, Gold, Cyan}

// WindowColor returns the color of window i.
func WindowColor(i int) color.Color {
	return windowColors[i%len(windowColors)]
}

func mustHex(s string) color.RGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(s) != 7 {
		panic(fmt.Sprintf("render: bad color %q", s))
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
