// pkg/render/renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-polygon-defense/internal/app"
	"go-polygon-defense/internal/component"
	"go-polygon-defense/internal/config"
	"go-polygon-defense/pkg/geom"
	"go-polygon-defense/pkg/pathing"
)

// mapKey identifies the route a pre-rendered map image was drawn for.
type mapKey struct {
	grid          *pathing.Grid
	width, height float64
	waypoints     int
}

// Renderer draws game snapshots with ebiten's vector primitives.
type Renderer struct {
	fillImg  *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
	mapImage *ebiten.Image // Grid, buildable cells and path ribbon
	mapKey   mapKey
}

func NewRenderer() *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Renderer{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 64),
		is:      make([]uint16, 0, 96),
	}
}

// Draw renders the playfield and every entity of snap.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.BackgroundColor)
	r.ensureMapImage(snap)
	if r.mapImage != nil {
		screen.DrawImage(r.mapImage, nil)
	}

	for i := range snap.Creeps {
		r.drawCreep(screen, &snap.Creeps[i])
	}
	for i := range snap.Towers {
		r.drawTower(screen, &snap.Towers[i])
	}
	for _, b := range snap.Bullets {
		vector.DrawFilledRect(screen, float32(b.Pos.X-1), float32(b.Pos.Y-1), 2, 2, b.Color, false)
	}
}

// DrawGhost draws the placement preview of a dragged tower.
func (r *Renderer) DrawGhost(screen *ebiten.Image, pos geom.Point, rangeRadius float64, ok bool) {
	c := config.GhostBadColor
	if ok {
		c = config.GhostOKColor
	}
	vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(rangeRadius), 1.5, c, true)
	half := config.CellSize / 2
	vector.DrawFilledRect(screen, float32(pos.X-half), float32(pos.Y-half), config.CellSize, config.CellSize, c, false)
}

// RenderMapImage redraws the static part of the playfield.
func (r *Renderer) RenderMapImage(snap app.Snapshot) {
	w, h := int(math.Ceil(snap.Width)), int(math.Ceil(snap.Height))
	if w <= 0 || h <= 0 {
		r.mapImage = nil
		return
	}
	if r.mapImage == nil || r.mapImage.Bounds().Dx() != w || r.mapImage.Bounds().Dy() != h {
		r.mapImage = ebiten.NewImage(w, h)
	}
	r.mapImage.Clear()

	if g := snap.Grid; g != nil {
		r.drawGrid(r.mapImage, g)
	}
	r.drawRibbon(r.mapImage, snap.Waypoints)
}

func (r *Renderer) ensureMapImage(snap app.Snapshot) {
	key := mapKey{grid: snap.Grid, width: snap.Width, height: snap.Height, waypoints: len(snap.Waypoints)}
	if r.mapImage != nil && key == r.mapKey {
		return
	}
	r.mapKey = key
	r.RenderMapImage(snap)
}

func (r *Renderer) drawGrid(target *ebiten.Image, g *pathing.Grid) {
	x0, y0 := float32(g.Origin.X), float32(g.Origin.Y)
	cell := float32(g.CellSize)
	w, h := cell*float32(g.Cols), cell*float32(g.Rows)

	for _, c := range g.BuildableCells() {
		vector.DrawFilledRect(target, x0+float32(c.C)*cell, y0+float32(c.R)*cell, cell, cell, config.BuildableColor, false)
	}
	for i := 0; i <= g.Cols; i++ {
		x := x0 + float32(i)*cell + 0.5
		vector.StrokeLine(target, x, y0, x, y0+h, 1, config.GridLineColor, false)
	}
	for i := 0; i <= g.Rows; i++ {
		y := y0 + float32(i)*cell + 0.5
		vector.StrokeLine(target, x0, y, x0+w, y, 1, config.GridLineColor, false)
	}
}

func (r *Renderer) drawRibbon(target *ebiten.Image, waypoints []geom.Point) {
	if len(waypoints) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(waypoints[0].X), float32(waypoints[0].Y))
	for _, p := range waypoints[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    config.PathWidth,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	r.drawTriangles(target, config.PathRibbonColor)
}

func (r *Renderer) drawCreep(screen *ebiten.Image, c *component.Creep) {
	var path vector.Path
	for i := 0; i < c.Sides; i++ {
		a := c.Rotation + float64(i)/float64(c.Sides)*2*math.Pi
		x := float32(c.Pos.X + math.Cos(a)*c.Radius)
		y := float32(c.Pos.Y + math.Sin(a)*c.Radius)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	r.drawTriangles(screen, c.Color)
	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{Width: 1.5})
	r.drawTriangles(screen, DarkenColor(c.Color))

	if c.HP < c.MaxHP {
		w := float32(c.Radius * 1.8)
		x := float32(c.Pos.X) - w/2
		y := float32(c.Pos.Y-c.Radius) - config.HealthBarOffset
		pct := float32(max(0, float64(c.HP)/float64(c.MaxHP)))
		vector.DrawFilledRect(screen, x, y, w, config.HealthBarHeight, config.HealthBackColor, false)
		vector.DrawFilledRect(screen, x, y, w*pct, config.HealthBarHeight, config.HealthFillColor, false)
	}
}

func (r *Renderer) drawTower(screen *ebiten.Image, t *component.Tower) {
	x, y := float32(t.Site.Pos.X), float32(t.Site.Pos.Y)
	vector.StrokeCircle(screen, x, y, float32(t.Def.Range), 1.5, config.TowerRangeColor, true)
	DrawTowerIcon(screen, x, y, config.CellSize, t.Def.Color)
}

// DrawTowerIcon draws a tower body of the given size centred on (x, y).
func DrawTowerIcon(screen *ebiten.Image, x, y, size float32, c color.RGBA) {
	half := size / 2
	vector.DrawFilledRect(screen, x-half, y-half, size, size, config.TowerBodyColor, false)
	vector.StrokeRect(screen, x-half, y-half, size, size, 2, c, false)
	vector.DrawFilledRect(screen, x-2, y-2, 4, 4, c, false)
}

func (r *Renderer) drawTriangles(target *ebiten.Image, c color.RGBA) {
	tintVertices(r.vs, c)
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
