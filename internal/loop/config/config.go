// Package config centralizes all tunable arcade parameters.
package config

import (
	"time"

	"github.com/tomz197/asteroids/internal/physics"
)

// World bounds.
const (
	ScreenMinX = -500
	ScreenMaxX = 500
	ScreenMinY = -500
	ScreenMaxY = 500
)

// DefaultField is the world every game is played on unless overridden.
var DefaultField = physics.Field{
	X: physics.Bounds{Min: ScreenMinX, Max: ScreenMaxX},
	Y: physics.Bounds{Min: ScreenMinY, Max: ScreenMaxY},
}

// Asteroids
const (
	DefaultAsteroids    = 5
	MaxAsteroids        = 1000 // Initial count upper bound
	AsteroidInitialSize = 3
	MinAsteroidSpeed    = 1 // Per axis, units per tick
	MaxAsteroidSpeed    = 3
)

// Torpedoes
const (
	TorpedoLimit    = 15  // In flight at once
	TorpedoLifetime = 200 // Ticks
)

// Player
const (
	InitialLives = 3
	InitialScore = 0
)

// InterceptionPoints is the score for hitting an asteroid of each size.
var InterceptionPoints = map[int]int{
	1: 100,
	2: 50,
	3: 20,
}

// SplitValues scale the two fragments of a split asteroid so they part ways.
var SplitValues = [2]float64{-1, 1}

// Tick timing
const (
	DefaultTickInterval = 30 * time.Millisecond
)

// Messages
const (
	TitleCollision = "Collision!"
	MsgCollision   = "Better watch out...\n Remaining lives: "
	TitleWin       = "Victory!"
	MsgWin         = "You rock!\n Final score: "
	TitleLost      = "GAME OVER"
	MsgLost        = "Maybe next time..."
	TitleQuit      = "QUIT GAME"
	MsgQuit        = "Are you sure?"
)
