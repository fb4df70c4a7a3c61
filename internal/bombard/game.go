package bombard

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// BombRounds is the fuse of a freshly placed bomb.
const BombRounds = 3

// ErrInvalidBoard is returned for a board size below one.
var ErrInvalidBoard = errors.New("invalid board size")

// TargetSource supplies the coordinate to bomb each round. Target blocks
// until the player has chosen.
type TargetSource interface {
	Target(boardSize int) (Coordinate, error)
}

// Reporter presents the game to the player.
type Reporter interface {
	Legend()
	Board(board string)
	Turn(hits, terminations int)
	GameOver()
}

// Options configures a Game. The zero value is usable.
type Options struct {
	Palette Palette     // Board styling; plain when zero
	Logger  *log.Logger // Debug events; discarded when nil
}

// RoundResult summarizes one round.
type RoundResult struct {
	Target       Coordinate
	Hits         int          // New hits on ship cells
	Terminations int          // Ships sunk and removed
	Exploded     []Coordinate // Bombs that went off, in explosion order
	Board        string
}

// Game runs the bombardment rounds.
type Game struct {
	size     int
	ships    []*Ship
	bombs    map[Coordinate]int // Remaining rounds per bomb
	targets  TargetSource
	reporter Reporter
	palette  Palette
	logger   *log.Logger
}

// NewGame creates a game on a size x size board.
func NewGame(size int, ships []*Ship, targets TargetSource, reporter Reporter, opts Options) (*Game, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoard, size)
	}
	for _, s := range ships {
		if s.boardSize != size {
			return nil, fmt.Errorf("%w: ship %s was placed on a %d board", ErrShipOffBoard, s, s.boardSize)
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		size:     size,
		ships:    slices.Clone(ships),
		bombs:    make(map[Coordinate]int),
		targets:  targets,
		reporter: reporter,
		palette:  opts.Palette,
		logger:   logger,
	}, nil
}

// Ships returns the ships still afloat. The slice must not be modified.
func (g *Game) Ships() []*Ship {
	return g.ships
}

// Bombs returns a copy of the live bombs and their remaining rounds.
func (g *Game) Bombs() map[Coordinate]int {
	return maps.Clone(g.bombs)
}

// Over reports whether every ship has been sunk.
func (g *Game) Over() bool {
	return len(g.ships) == 0
}

// Play shows the legend and the initial board, then plays rounds until no
// ships remain.
func (g *Game) Play() error {
	g.reporter.Legend()
	g.reporter.Board(g.board(nil))
	for !g.Over() {
		if _, err := g.PlayRound(); err != nil {
			return err
		}
	}
	g.reporter.GameOver()
	return nil
}

// PlayRound plays one round: place a bomb, move ships and detonate, age
// the bombs, show the board, then remove sunk ships.
func (g *Game) PlayRound() (RoundResult, error) {
	target, err := g.targets.Target(g.size)
	if err != nil {
		return RoundResult{}, fmt.Errorf("read target: %w", err)
	}
	if !target.OnBoard(g.size) {
		return RoundResult{}, fmt.Errorf("%w: %s", ErrInvalidCoordinate, target)
	}
	g.bombs[target] = BombRounds

	hits, exploded := g.moveAndDetonate()
	g.updateBombs(target, exploded)

	board := g.board(exploded)
	g.reporter.Board(board)

	terminations := g.removeTerminated()
	g.reporter.Turn(hits, terminations)

	g.logger.Debug("round played", "target", target.Label(), "hits", hits,
		"terminations", terminations, "ships", len(g.ships), "bombs", len(g.bombs))
	return RoundResult{
		Target:       target,
		Hits:         hits,
		Terminations: terminations,
		Exploded:     exploded,
		Board:        board,
	}, nil
}

// moveAndDetonate moves every undamaged ship, then sets off every bomb the
// ship now sits on.
func (g *Game) moveAndDetonate() (int, []Coordinate) {
	hits := 0
	var exploded []Coordinate
	bombs := g.sortedBombs()

	for _, s := range g.ships {
		if !s.Damaged() {
			s.Move()
		}
		for _, b := range bombs {
			if !s.Occupies(b) {
				continue
			}
			if s.Hit(b) {
				hits++
			}
			if !slices.Contains(exploded, b) {
				exploded = append(exploded, b)
				g.logger.Debug("bomb exploded", "at", b.Label())
			}
		}
	}
	return hits, exploded
}

// updateBombs removes exploded and expired bombs and ages the rest. The
// bomb placed this round keeps its full fuse.
func (g *Game) updateBombs(target Coordinate, exploded []Coordinate) {
	for _, b := range g.sortedBombs() {
		rounds := g.bombs[b]
		if slices.Contains(exploded, b) || rounds-1 == 0 {
			delete(g.bombs, b)
			continue
		}
		if b != target {
			g.bombs[b] = rounds - 1
		}
	}
}

func (g *Game) sortedBombs() []Coordinate {
	return slices.SortedFunc(maps.Keys(g.bombs), compareCoordinates)
}

// AssessDamage splits all ship cells into intact and hit cells. A cell
// shared by several ships counts as hit when any of them is hit there.
func (g *Game) AssessDamage() (notHit, hit []Coordinate) {
	hitSet := make(map[Coordinate]bool)
	for _, s := range g.ships {
		for _, c := range s.DamagedCells() {
			hitSet[c] = true
		}
	}
	seen := make(map[Coordinate]bool)
	for _, s := range g.ships {
		for _, c := range s.Coordinates() {
			if seen[c] {
				continue
			}
			seen[c] = true
			if hitSet[c] {
				hit = append(hit, c)
			} else {
				notHit = append(notHit, c)
			}
		}
	}
	return notHit, hit
}

func (g *Game) board(exploded []Coordinate) string {
	notHit, hit := g.AssessDamage()
	return BoardString(g.size, exploded, g.bombs, hit, notHit, g.palette)
}

// removeTerminated drops every sunk ship and returns how many there were.
func (g *Game) removeTerminated() int {
	before := len(g.ships)
	g.ships = slices.DeleteFunc(g.ships, func(s *Ship) bool {
		if s.Terminated() {
			g.logger.Debug("ship terminated", "ship", s)
			return true
		}
		return false
	})
	return before - len(g.ships)
}

// String formats the game as "(board size, {bombs}, [ships])".
func (g *Game) String() string {
	bombs := make([]string, 0, len(g.bombs))
	for _, b := range g.sortedBombs() {
		bombs = append(bombs, fmt.Sprintf("%s: %d", b, g.bombs[b]))
	}
	ships := make([]string, len(g.ships))
	for i, s := range g.ships {
		ships[i] = s.String()
	}
	return fmt.Sprintf("(%d, {%s}, [%s])", g.size, strings.Join(bombs, ", "), strings.Join(ships, ", "))
}
