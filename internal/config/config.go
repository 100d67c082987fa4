// internal/config/config.go
package config

import "image/color"

// Battlefield geometry. All values are in logical pixels of the 160x90 screen.
const (
	ScreenWidth  = 160
	ScreenHeight = 90

	RowCount    = 5
	ColumnCount = 9
	TileWidth   = 17
	TileHeight  = 15
	FieldOffset = 4 // отступ поля от начала координат по обеим осям

	// FieldWidth - правая граница поля, за которой снаряд исчезает
	FieldWidth = FieldOffset + TileWidth*ColumnCount

	EnemySpawnPosition = ScreenWidth
)

// Economy and pacing defaults.
const (
	StartingMoney   = 20
	MaxMoney        = 99
	MoneyPeriod     = 600 // тиков между начислениями
	EnemyStepPeriod = 20
	TicksPerSecond  = 60
	WindowScale     = 6
)

// HUD layout.
const (
	MoneyX     = 7
	MoneyY     = 81
	ArrowX     = 21
	ArrowUpY   = 81
	ArrowDownY = 86
	NameX      = 27
	NameY      = 81
	CostX      = 154
	CostY      = 81
	GlyphWidth = 4
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	FrameColor      = color.RGBA{70, 100, 120, 255}
	TileColor       = color.RGBA{50, 80, 60, 255}
	CursorColor     = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	TowerColors     = []color.RGBA{
		{0, 0, 0, 0},         // пустая клетка
		{255, 215, 0, 255},   // RatChef
		{180, 50, 230, 255},  // RatBandit
		{50, 100, 255, 255},  // RatArcher
		{128, 128, 128, 255}, // RatKnight
	}
)
