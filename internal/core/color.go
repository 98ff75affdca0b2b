package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Scene palette.
const (
	ColorDefault Color = iota
	ColorStarDim       // Distant backdrop stars
	ColorStar          // Bright backdrop stars
	ColorRock          // Near obstacles
	ColorRockFar       // Far obstacles
	ColorLaser         // Projectiles
	ColorCraft         // Player craft
	ColorHUD           // Score and status text
	ColorAlert         // Pause banner, warnings
)
