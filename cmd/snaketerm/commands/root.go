package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snaketerm/engine/config"
	"github.com/snaketerm/engine/version"
)

var rootCmd = &cobra.Command{
	Use:     "snaketerm",
	Short:   "snaketerm plays the classic snake game in your terminal",
	Version: version.Version,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	width     int
	height    int
	speed     int
	twoPlayer bool
	logFile   string
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().IntVarP(&width, "width", "w", 20, "board width")
	rootCmd.PersistentFlags().IntVar(&height, "height", 15, "board height")
	rootCmd.PersistentFlags().IntVarP(&speed, "speed", "s", 5, "game speed, 1 (slow) to 15 (fast)")
	rootCmd.PersistentFlags().BoolVarP(&twoPlayer, "two-player", "2", false, "two snakes on one keyboard (arrows vs WASD)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append engine logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func gameOptions() config.Game {
	return config.Game{
		Width:     width,
		Height:    height,
		Speed:     speed,
		TwoPlayer: twoPlayer,
	}
}
