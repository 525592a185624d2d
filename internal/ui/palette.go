// internal/ui/palette.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/defs"
	"go-polygon-defense/pkg/geom"
	"go-polygon-defense/pkg/render"
)

var lockedLabels = []string{"Coming", "Soon", "Soon"}

// Slot is one palette button. Locked slots carry only a label.
type Slot struct {
	Rect  geom.Rect
	Tower *defs.TowerDefinition
	Label string
}

func (s Slot) Active() bool {
	return s.Tower != nil
}

// Palette is the tower bar along the bottom of the screen.
type Palette struct {
	Slots    []Slot
	fontFace font.Face
	barY     float64
	width    float64
}

// NewPalette fills the slots from the library in order; the rest are locked.
func NewPalette(towers *defs.Library, face font.Face) *Palette {
	p := &Palette{
		Slots:    make([]Slot, config.PaletteSlots),
		fontFace: face,
	}
	all := towers.All()
	locked := 0
	for i := range p.Slots {
		if i < len(all) {
			def := all[i]
			p.Slots[i].Tower = &def
			continue
		}
		if locked < len(lockedLabels) {
			p.Slots[i].Label = lockedLabels[locked]
		} else {
			p.Slots[i].Label = "Locked"
		}
		locked++
	}
	return p
}

// Layout positions the slots for a screen size.
func (p *Palette) Layout(screenWidth, screenHeight int) {
	w, h := float64(screenWidth), float64(screenHeight)
	p.barY = h - config.UIHeight
	p.width = w
	for i, r := range PaletteRects(w, h, len(p.Slots)) {
		p.Slots[i].Rect = r
	}
}

// PaletteRects returns n evenly spaced slot rectangles inside the bar.
func PaletteRects(screenWidth, screenHeight float64, n int) []geom.Rect {
	pad := float64(config.PalettePad)
	barH := float64(config.UIHeight - config.SafeBottom)
	y := screenHeight - config.UIHeight + pad
	slotW := min(config.PaletteSlotMaxWidth, (screenWidth-pad*float64(n+1))/float64(n))

	rects := make([]geom.Rect, n)
	for i := range rects {
		rects[i] = geom.Rect{X: pad + float64(i)*(slotW+pad), Y: y, W: slotW, H: barH - pad*2}
	}
	return rects
}

// SlotAt returns the index of the slot under p.
func (p *Palette) SlotAt(pt geom.Point) (int, bool) {
	for i, s := range p.Slots {
		if s.Rect.Contains(pt) {
			return i, true
		}
	}
	return -1, false
}

func (p *Palette) Draw(screen *ebiten.Image, money int) {
	vector.DrawFilledRect(screen, 0, float32(p.barY), float32(p.width), config.UIHeight, config.PaletteBarColor, false)
	vector.DrawFilledRect(screen, 0, float32(p.barY), float32(p.width), 1, config.PaletteEdgeColor, false)

	for _, s := range p.Slots {
		x, y, w, h := float32(s.Rect.X), float32(s.Rect.Y), float32(s.Rect.W), float32(s.Rect.H)
		center := s.Rect.Center()
		if !s.Active() {
			vector.DrawFilledRect(screen, x, y, w, h, config.SlotInactiveColor, false)
			vector.StrokeRect(screen, x, y, w, h, 2, config.SlotIdleStroke, false)
			drawCentered(screen, s.Label, p.fontFace, center.X, center.Y, config.SlotLabelColor)
			continue
		}

		vector.DrawFilledRect(screen, x, y, w, h, config.SlotActiveColor, false)
		vector.StrokeRect(screen, x, y, w, h, 2, config.SlotActiveStroke, false)
		render.DrawTowerIcon(screen, float32(center.X), float32(center.Y-8), 28, s.Tower.Color)
		drawCentered(screen, s.Tower.Name, p.fontFace, center.X, s.Rect.Y+s.Rect.H-26, config.HUDTextColor)

		priceColor := config.UnaffordableColor
		if money >= s.Tower.Cost {
			priceColor = config.AffordableColor
		}
		drawCentered(screen, fmt.Sprintf("$%d", s.Tower.Cost), p.fontFace, center.X, s.Rect.Y+s.Rect.H-10, priceColor)
	}
}
