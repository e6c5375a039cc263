package commands

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"github.com/snaketerm/engine/rules"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	corpseColor  = termbox.ColorWhite
	foodColor    = termbox.ColorRed

	headRune   = '@'
	bodyRune   = '#'
	foodRune   = '*'
	corpseRune = '+'

	boardLeft = 2
	boardTop  = 1
)

var snakeColors = map[string]termbox.Attribute{
	rules.PlayerOneID: termbox.ColorGreen,
	rules.PlayerTwoID: termbox.ColorMagenta,
}

func render(snap rules.Snapshot) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	renderTitle(snap)
	renderBorder(snap)
	renderCorpse(snap)
	for _, s := range snap.Snakes {
		renderSnake(s)
	}
	renderFood(snap)
	renderScores(snap)
	renderStatus(snap)

	return termbox.Flush()
}

// cell converts board coordinates to screen coordinates inside the
// border.
func cell(p rules.Point) (x, y int) {
	return boardLeft + p.Col, boardTop + 1 + p.Row
}

func renderTitle(snap rules.Snapshot) {
	tbprint(boardLeft, boardTop-1, defaultColor, defaultColor, fmt.Sprintf("Snake! - Turn %d", snap.Turn))
}

func renderBorder(snap rules.Snapshot) {
	bottom := boardTop + snap.Height + 1
	right := boardLeft + snap.Width

	for y := boardTop + 1; y < bottom; y++ {
		termbox.SetCell(boardLeft-1, y, '│', defaultColor, bgColor)
		termbox.SetCell(right, y, '│', defaultColor, bgColor)
	}
	for x := boardLeft; x < right; x++ {
		termbox.SetCell(x, boardTop, '─', defaultColor, bgColor)
		termbox.SetCell(x, bottom, '─', defaultColor, bgColor)
	}
	termbox.SetCell(boardLeft-1, boardTop, '┌', defaultColor, bgColor)
	termbox.SetCell(right, boardTop, '┐', defaultColor, bgColor)
	termbox.SetCell(boardLeft-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)
}

// renderSnake draws a live snake's body. Dead snakes are not drawn
// here: their cells are already in the corpse set.
func renderSnake(s rules.SnakeState) {
	if !s.Alive {
		return
	}
	color, ok := snakeColors[s.ID]
	if !ok {
		color = termbox.ColorGreen
	}
	for i, b := range s.Body {
		r := rune(bodyRune)
		if i == 0 {
			r = headRune
		}
		x, y := cell(b)
		termbox.SetCell(x, y, r, color, bgColor)
	}
}

func renderCorpse(snap rules.Snapshot) {
	for _, p := range snap.Corpse {
		x, y := cell(p)
		termbox.SetCell(x, y, corpseRune, corpseColor, bgColor)
	}
}

func renderFood(snap rules.Snapshot) {
	if snap.Food == nil {
		return
	}
	x, y := cell(*snap.Food)
	termbox.SetCell(x, y, foodRune, foodColor, bgColor)
}

func renderScores(snap rules.Snapshot) {
	left := boardLeft + snap.Width + 3
	row := boardTop + 1
	for _, s := range snap.Snakes {
		tbprint(left, row, defaultColor, defaultColor, scoreLine(s))
		row++
	}
}

func renderStatus(snap rules.Snapshot) {
	tbprint(boardLeft, boardTop+snap.Height+2, defaultColor, defaultColor, statusLine(snap))
}

// scoreLine is the per-snake sidebar text.
func scoreLine(s rules.SnakeState) string {
	text := fmt.Sprintf("%s: %d", s.Name, s.Score)
	if !s.Alive {
		text = fmt.Sprintf("%s - %s", text, s.DeathCause)
	}
	return text
}

// statusLine is the hint text under the board for the current state.
func statusLine(snap rules.Snapshot) string {
	var text string
	switch snap.Status {
	case rules.GameStatusNotStarted:
		text = "Press SPACE to start"
	case rules.GameStatusPaused:
		text = "PAUSED - Press SPACE to resume"
	case rules.GameStatusComplete:
		text = gameOverLine(snap)
	default:
		if snap.Mode == rules.GameModeTwoPlayer {
			text = "Arrows: P1 | WASD: P2 | SPACE: Pause | R: Restart | Q: Quit"
		} else {
			text = "WASD/Arrows: Move | SPACE: Pause | R: Restart | Q: Quit"
		}
	}
	if snap.BoardFull {
		text = text + " (board full)"
	}
	return text
}

func gameOverLine(snap rules.Snapshot) string {
	if snap.Mode != rules.GameModeTwoPlayer {
		return "GAME OVER! Press R to restart, Q to quit"
	}
	if snap.Tie {
		return "GAME OVER - Tie game! Press R to restart, Q to quit"
	}
	winner := snap.Winner
	for _, s := range snap.Snakes {
		if s.ID == snap.Winner {
			winner = s.Name
		}
	}
	return fmt.Sprintf("GAME OVER - %s wins! Press R to restart, Q to quit", winner)
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
