package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Tuning variables. These aren't user facing but useful for tweaking
// the feel of the game.
var (
	// FoodReward is the score a snake earns for each food eaten.
	FoodReward = getEnvInt("FOOD_REWARD", 10)
	// InputRate caps how many movement keys per second reach the
	// engine, so terminal key repeat cannot flood it between ticks.
	InputRate = rate.Limit(getEnvInt("INPUT_RPS", 30))
	// InputBurst is the burst allowance paired with InputRate.
	InputBurst = getEnvInt("INPUT_BURST", 10)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

// Bounds for the user facing options below.
const (
	MinWidth  = 10
	MaxWidth  = 50
	MinHeight = 8
	MaxHeight = 30
	MinSpeed  = 1
	MaxSpeed  = 15
)

// Game holds the options for one game, collected from the command line
// and validated before the rules package ever sees them.
type Game struct {
	Width     int
	Height    int
	Speed     int
	TwoPlayer bool
}

// Validate checks every option against its documented range.
func (g Game) Validate() error {
	if g.Width < MinWidth || g.Width > MaxWidth {
		return fmt.Errorf("config: width %d out of range [%d, %d]", g.Width, MinWidth, MaxWidth)
	}
	if g.Height < MinHeight || g.Height > MaxHeight {
		return fmt.Errorf("config: height %d out of range [%d, %d]", g.Height, MinHeight, MaxHeight)
	}
	if g.Speed < MinSpeed || g.Speed > MaxSpeed {
		return fmt.Errorf("config: speed %d out of range [%d, %d]", g.Speed, MinSpeed, MaxSpeed)
	}
	return nil
}

// TickInterval converts the speed level to the external clock period.
// Level 1 ticks every 500ms and every level above shaves off 30ms,
// with a 50ms floor.
func (g Game) TickInterval() time.Duration {
	d := 500*time.Millisecond - time.Duration(g.Speed-MinSpeed)*30*time.Millisecond
	if d < 50*time.Millisecond {
		d = 50 * time.Millisecond
	}
	return d
}
