package commands

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snaketerm/engine/config"
	"github.com/snaketerm/engine/rules"
)

var (
	games    int
	seed     int64
	maxTurns int
)

func init() {
	simulateCmd.Flags().IntVarP(&games, "num-games", "n", 10, "number of games to run")
	simulateCmd.Flags().Int64Var(&seed, "seed", 0, "base seed, 0 picks one from the clock")
	simulateCmd.Flags().IntVar(&maxTurns, "max-turns", 10000, "abort a game after this many ticks")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "simulate runs headless games with random steering and reports the outcomes",
	Args: func(c *cobra.Command, args []string) error {
		return gameOptions().Validate()
	},
	RunE: func(*cobra.Command, []string) error {
		return simulate(gameOptions())
	},
}

func simulate(opts config.Game) error {
	if err := configureLogging(false); err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	for i := 0; i < games; i++ {
		runGame(opts, seed+int64(i))
	}
	log.WithFields(log.Fields{
		"games":   games,
		"elapsed": time.Since(start),
	}).Info("all games complete")
	return nil
}

// runGame drives one game to completion with random legal steering.
// The loop is fully synchronous: the engine has no clock of its own,
// so ticks run as fast as they can.
func runGame(opts config.Game, gameSeed int64) {
	rnd := rand.New(rand.NewSource(gameSeed))
	game := rules.NewGame(opts.Width, opts.Height, opts.TwoPlayer, gameSeed)
	game.Start()

	for game.Status == rules.GameStatusRunning && game.Turn < maxTurns {
		for _, s := range game.AliveSnakes() {
			if rnd.Intn(4) == 0 {
				game.SetHeading(s.ID, rules.Heading(rnd.Intn(4)))
			}
		}
		game.Tick()
	}

	snap := game.Snapshot()
	log.WithFields(log.Fields{
		"game":   snap.GameID,
		"turns":  snap.Turn,
		"status": snap.Status,
		"winner": snap.Winner,
		"tie":    snap.Tie,
	}).Info("game complete")
}
