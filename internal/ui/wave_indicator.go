// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current wave in roman numerals, right-aligned.
type WaveIndicator struct {
	X, Y         int // Top-right corner
	Color        color.RGBA
	OutlineColor color.RGBA
	fontFace     font.Face
}

func NewWaveIndicator(x, y int, face font.Face, c color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        c,
		OutlineColor: color.RGBA{0, 0, 0, 255},
		fontFace:     face,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	label := toRoman(waveNumber)
	if label == "" {
		return
	}
	label = "Wave " + label

	bounds := text.BoundString(i.fontFace, label)
	x := i.X - bounds.Dx()
	y := i.Y - bounds.Min.Y

	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, label, i.fontFace, x+d[0], y+d[1], i.OutlineColor)
	}
	text.Draw(screen, label, i.fontFace, x, y, i.Color)
}
