package engine

import (
	"fmt"

	"catan/agent"
	"catan/game"
	"catan/meta"
)

// Engine drives one game: the opening placements, then rounds of turns until a
// player reaches the win threshold or the round cap is hit.
type Engine struct {
	Board  *game.Board
	Agents []agent.Agent
	Dice   *game.Dice
	Round  int
	Turn   int // active player

	maxRounds int
	env       game.Env
	rng       game.Rand
	layout    *game.Layout
}

type Option func(*Engine)

func WithRenderer(r game.Renderer) Option {
	return func(e *Engine) {
		e.env.Renderer = r
	}
}

func WithSink(s game.Sink) Option {
	return func(e *Engine) {
		e.env.Sink = s
	}
}

func WithStatistics(s game.StatisticsSink) Option {
	return func(e *Engine) {
		e.env.Statistics = s
	}
}

// WithRand replaces the source of dice, steals and shuffles.
func WithRand(rng game.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLayout fixes the board layout, overriding the config.
func WithLayout(l game.Layout) Option {
	return func(e *Engine) {
		e.layout = &l
	}
}

// New builds the board for cfg, one agent per player.
func New(cfg meta.Config, agents []agent.Agent, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(agents) != cfg.Players {
		return nil, fmt.Errorf("number of players (%d) does not match number of agents (%d)", cfg.Players, len(agents))
	}

	e := &Engine{
		Agents:    agents,
		maxRounds: cfg.MaxRounds,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = game.NewRand(cfg.Seed)
	}
	if e.layout == nil {
		l := game.DefaultLayout()
		if cfg.RandomLayout {
			l = game.RandomLayout(e.rng)
		}
		e.layout = &l
	}

	b, err := game.NewBoard(cfg.Players, *e.layout, e.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	b.WinPoints = cfg.WinPoints
	e.Board = b
	e.Dice = game.NewDice(e.rng)
	return e, nil
}

// Play applies a for the active player.
func (e *Engine) Play(a game.Action) error {
	if a == nil {
		return game.ErrUnknownAction
	}
	if a.Actor() != e.Turn {
		return fmt.Errorf("%w: player %d is not active, player %d is", game.ErrIllegalAction, a.Actor(), e.Turn)
	}
	return e.do(a)
}

func (e *Engine) do(a game.Action) error {
	_, err := game.Do(e.Board, a, e.env)
	return err
}

// Winner returns the winning player, or NoPlayer while the game goes on.
func (e *Engine) Winner() int {
	return e.Board.Winner()
}

func (e *Engine) observer() game.Observer {
	if o, ok := e.env.Sink.(game.Observer); ok {
		return o
	}
	return nil
}

func (e *Engine) nextTurn(player int) {
	e.Turn = player
	if o := e.observer(); o != nil {
		o.NextTurn(e.Round, player)
	}
}
