// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 960
	ScreenHeight  = 720
	UIHeight      = 140
	SafeBottom    = 10
	MinPlayHeight = 200

	CellSize  = 32.0
	PathWidth = 32.0
	GridCols  = 10
	GridRows  = 10

	MinDeltaTime = 0.001
	MaxDeltaTime = 0.033

	KillBounty       = 6
	BulletMargin     = 20.0
	MinSpawnInterval = 1.0
	WaveIntervalStep = 0.1
	SpawnEpsilon     = 1e-9 // Absorbs float drift in the spawn accumulator

	MaxCreepSides     = 6
	MinCreepSides     = 3
	CreepBaseSpeed    = 48.0
	CreepSpeedPerSide = 8.0
	CreepHPPerSide    = 2.0
	CreepSpinSpan     = 0.6
	SplitChildren     = 2
	SplitJitterMin    = 4.0
	SplitJitterSpan   = 3.0

	PaletteSlots        = 4
	PalettePad          = 12
	PaletteSlotMaxWidth = 120
	PaletteCornerRadius = 10

	HealthBarHeight = 4
	HealthBarOffset = 10

	TerminalTickMs   = 33
	KillToneHz       = 660
	KillToneMs       = 40
	AudioSampleRate  = 44100
	AudioBufferDivMs = 100
)

// Colors are alpha-premultiplied, as color.RGBA requires.
var (
	BackgroundColor   = color.RGBA{14, 15, 18, 255}
	GridLineColor     = color.RGBA{13, 13, 13, 13}
	BuildableColor    = color.RGBA{5, 11, 15, 15}
	PathRibbonColor   = color.RGBA{25, 50, 64, 64}
	TowerBodyColor    = color.RGBA{17, 34, 42, 255}
	TowerRangeColor   = color.RGBA{16, 35, 38, 38}
	HUDTextColor      = color.RGBA{207, 231, 255, 255}
	PaletteBarColor   = color.RGBA{11, 17, 22, 255}
	PaletteEdgeColor  = color.RGBA{15, 15, 15, 15}
	SlotActiveColor   = color.RGBA{15, 26, 34, 255}
	SlotInactiveColor = color.RGBA{10, 15, 20, 255}
	SlotActiveStroke  = color.RGBA{54, 120, 128, 128}
	SlotIdleStroke    = color.RGBA{20, 20, 20, 20}
	SlotLabelColor    = color.RGBA{139, 155, 176, 255}
	AffordableColor   = color.RGBA{155, 255, 198, 255}
	UnaffordableColor = color.RGBA{255, 209, 209, 255}
	GhostOKColor      = color.RGBA{37, 83, 89, 89}
	GhostBadColor     = color.RGBA{89, 41, 41, 89}
	HealthBackColor   = color.RGBA{0, 0, 0, 153}
	HealthFillColor   = color.RGBA{82, 255, 168, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 153}
	OverlayTextColor  = color.RGBA{255, 255, 255, 255}

	CreepColors = map[int]color.RGBA{
		6: {255, 159, 67, 255},
		5: {243, 104, 224, 255},
		4: {84, 160, 255, 255},
		3: {29, 209, 161, 255},
	}
	DefaultCreepColor = color.RGBA{200, 214, 229, 255}
)
