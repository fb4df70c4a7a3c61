package loop

import (
	"strconv"

	"github.com/tomz197/asteroids/internal/loop/config"
)

// OutcomeKind is the game status after a tick.
type OutcomeKind int

const (
	Running OutcomeKind = iota // Game continues
	Won                        // No asteroids left
	Lost                       // No lives left
	Quit                       // Player asked to quit
)

func (k OutcomeKind) String() string {
	switch k {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the terminal-state signal of a tick. Only the orchestrator
// driving the runner acts on it.
type Outcome struct {
	Kind  OutcomeKind
	Title string
	Text  string
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool {
	return o.Kind != Running
}

func wonOutcome(score int) Outcome {
	return Outcome{Kind: Won, Title: config.TitleWin, Text: config.MsgWin + strconv.Itoa(score)}
}

func lostOutcome() Outcome {
	return Outcome{Kind: Lost, Title: config.TitleLost, Text: config.MsgLost}
}

func quitOutcome() Outcome {
	return Outcome{Kind: Quit, Title: config.TitleQuit, Text: config.MsgQuit}
}

// Result summarizes a finished game.
type Result struct {
	Outcome Outcome
	Score   int
	Lives   int
}
