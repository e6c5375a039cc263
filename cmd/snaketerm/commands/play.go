package commands

import (
	"io"
	"os"
	"time"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/snaketerm/engine/config"
	"github.com/snaketerm/engine/rules"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play starts an interactive game in the current terminal",
	Args: func(c *cobra.Command, args []string) error {
		return gameOptions().Validate()
	},
	RunE: func(*cobra.Command, []string) error {
		return play(gameOptions())
	},
}

// configureLogging points logrus at the --log-file target. While the
// termbox UI owns the terminal the logger must not write to it, so
// interactive play discards logs when no file is given.
func configureLogging(interactive bool) error {
	if logFile == "" {
		if interactive {
			log.SetOutput(io.Discard)
		}
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrap(err, "opening log file")
	}
	log.SetOutput(f)
	return nil
}

func play(opts config.Game) error {
	// Reachable through the bare root command too, which skips the
	// subcommand Args hook.
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := configureLogging(true); err != nil {
		return err
	}

	game := rules.NewGame(opts.Width, opts.Height, opts.TwoPlayer, time.Now().UnixNano())

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	limiter := rate.NewLimiter(config.InputRate, config.InputBurst)
	clock := time.NewTicker(opts.TickInterval())
	defer clock.Stop()

	if err := render(game.Snapshot()); err != nil {
		return errors.Wrap(err, "rendering board")
	}

	for {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			if quit := handleKey(game, ev, limiter); quit {
				return nil
			}
		case <-clock.C:
			game.Tick()
		}
		if err := render(game.Snapshot()); err != nil {
			return errors.Wrap(err, "rendering board")
		}
	}
}

// handleKey maps one key press onto an engine operation. Every
// operation is an instantaneous state change; nothing here blocks the
// tick clock.
func handleKey(game *rules.Game, ev termbox.Event, limiter *rate.Limiter) bool {
	switch {
	case ev.Key == termbox.KeyEsc, ev.Ch == 'q', ev.Ch == 'Q':
		return true
	case ev.Key == termbox.KeySpace:
		if game.Status == rules.GameStatusNotStarted {
			game.Start()
		} else {
			game.TogglePause()
		}
	case ev.Ch == 'r', ev.Ch == 'R':
		game.Restart()
	default:
		if id, heading, ok := moveIntent(ev); ok && limiter.Allow() {
			game.SetHeading(id, heading)
		}
	}
	return false
}

// moveIntent decodes a movement key. Arrows steer player one; in a
// two-player game WASD steers player two, otherwise WASD is an alias
// for the arrows.
func moveIntent(ev termbox.Event) (string, rules.Heading, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return rules.PlayerOneID, rules.Up, true
	case termbox.KeyArrowDown:
		return rules.PlayerOneID, rules.Down, true
	case termbox.KeyArrowLeft:
		return rules.PlayerOneID, rules.Left, true
	case termbox.KeyArrowRight:
		return rules.PlayerOneID, rules.Right, true
	}

	id := rules.PlayerOneID
	if twoPlayer {
		id = rules.PlayerTwoID
	}
	switch ev.Ch {
	case 'w', 'W':
		return id, rules.Up, true
	case 's', 'S':
		return id, rules.Down, true
	case 'a', 'A':
		return id, rules.Left, true
	case 'd', 'D':
		return id, rules.Right, true
	}
	return "", 0, false
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
