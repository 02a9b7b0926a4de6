package config

import "image/color"

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Frames per second requested from the host scheduler
	TicksPerSecond = 60

	DefaultCount = 10

	// Spawn parameters
	RadiusMin        = 20.0
	RadiusMax        = 50.0
	SpawnBandDepth   = 100.0
	SpeedMin         = 1.0
	SpeedMax         = 5.0
	VelocityXMin     = -1.0
	VelocityXMax     = 1.0
	MaxSpawnAttempts = 10000

	// Drawing
	StrokeWidth = 2.0
	LabelSize   = 20.0

	// Terminal backend: world pixels per cell
	CellWidth  = 10
	CellHeight = 20

	// Audio
	SampleRate     = 44100
	PopFrequency   = 660.0
	PopDurationMs  = 60
	PopVolume      = 0.35
	LevelRingSize  = 4096
	LevelSmoothing = 0.6
)

var (
	Background     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	HighlightColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	LabelColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
