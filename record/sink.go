package record

import (
	"catan/game"

	"github.com/rs/zerolog"
)

// Zerolog writes one structured event per applied action.
type Zerolog struct {
	Game   string
	Logger zerolog.Logger
}

func NewZerolog(id string, logger zerolog.Logger) *Zerolog {
	return &Zerolog{Game: id, Logger: logger}
}

func (z *Zerolog) Action(r game.Record) {
	z.Logger.Debug().
		Str("game", z.Game).
		Str("action", r.Name).
		Int("player", r.Player).
		Fields(r.Fields).
		Msg("action")
}

// Tee forwards records to every sink it holds, and game events to the sinks
// that observe them.
type Tee []game.Sink

func (t Tee) Action(r game.Record) {
	for _, s := range t {
		s.Action(r)
	}
}

func (t Tee) NextTurn(round, player int) {
	for _, s := range t {
		if o, ok := s.(game.Observer); ok {
			o.NextTurn(round, player)
		}
	}
}

func (t Tee) Dice(roll int) {
	for _, s := range t {
		if o, ok := s.(game.Observer); ok {
			o.Dice(roll)
		}
	}
}

func (t Tee) Start(layout game.Layout) {
	for _, s := range t {
		if o, ok := s.(game.Observer); ok {
			o.Start(layout)
		}
	}
}

func (t Tee) Finish(winner, rounds int) {
	for _, s := range t {
		if o, ok := s.(game.Observer); ok {
			o.Finish(winner, rounds)
		}
	}
}
