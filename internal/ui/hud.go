// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-polygon-defense/internal/component"
	"go-polygon-defense/internal/config"
)

// HUD shows money, lives, score and the wave in the top corners.
type HUD struct {
	fontFace font.Face
	wave     *WaveIndicator
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		fontFace: face,
		wave:     NewWaveIndicator(config.ScreenWidth-10, 8, face, config.HUDTextColor),
	}
}

// Layout keeps the wave indicator in the top-right corner.
func (h *HUD) Layout(screenWidth, _ int) {
	h.wave.X = screenWidth - 10
}

func (h *HUD) Draw(screen *ebiten.Image, s component.Status) {
	lines := []string{
		fmt.Sprintf("Money: $%d", s.Money),
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("Score: %d", s.Score),
	}
	for i, line := range lines {
		drawTopLeft(screen, line, h.fontFace, 10, 8+20*i, config.HUDTextColor)
	}
	h.wave.Draw(screen, s.Wave)
}

// DrawOverlay dims the whole screen.
func DrawOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.OverlayColor, false)
}

// DrawBanner centres a title and a subtitle on the screen.
func DrawBanner(screen *ebiten.Image, face font.Face, title, subtitle string) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	drawCentered(screen, title, face, w/2, h/2-10, config.OverlayTextColor)
	drawCentered(screen, subtitle, face, w/2, h/2+18, config.OverlayTextColor)
}

func DrawGameOver(screen *ebiten.Image, face font.Face, score int) {
	DrawOverlay(screen)
	DrawBanner(screen, face, "Game Over", fmt.Sprintf("Score: %d, press R to play again", score))
}

func drawTopLeft(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x, y-bounds.Min.Y, c)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy float64, c color.Color) {
	bounds := text.BoundString(face, s)
	x := int(cx) - bounds.Dx()/2 - bounds.Min.X
	y := int(cy) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, c)
}
