package record

import (
	"catan/game"

	"github.com/google/uuid"
)

// Record is an applied action placed in its game, round and turn.
type Record struct {
	Game   string
	Round  int
	Turn   int
	Name   string
	Player int
	Fields map[string]any
}

type Turn struct {
	Turn    int
	Dice    int
	Actions []Record
}

type Round struct {
	Round int
	Turns []Turn
}

// Ending is how a game finished: Winner is NoPlayer when the round cap hit.
type Ending struct {
	Winner int
	Rounds int
}

// Log keeps the history of one game in memory, round by round.
type Log struct {
	Game    string
	Players int
	Layout  game.Layout
	Rounds  []Round
	Ending  *Ending
}

// NewLog returns an empty log stamped with a fresh game id.
func NewLog(players int) *Log {
	return &Log{Game: uuid.NewString(), Players: players}
}

// Start keeps the board layout the game is played on.
func (l *Log) Start(layout game.Layout) {
	l.Layout = layout
}

// Finish closes the log with the winner and the rounds played.
func (l *Log) Finish(winner, rounds int) {
	l.Ending = &Ending{Winner: winner, Rounds: rounds}
}

// NextTurn opens the turn of player in round, opening the round if needed.
func (l *Log) NextTurn(round, player int) {
	if len(l.Rounds) == 0 || l.Rounds[len(l.Rounds)-1].Round != round {
		l.Rounds = append(l.Rounds, Round{Round: round})
	}
	r := &l.Rounds[len(l.Rounds)-1]
	r.Turns = append(r.Turns, Turn{Turn: player})
}

// Dice records the roll of the current turn.
func (l *Log) Dice(roll int) {
	if t := l.current(); t != nil {
		t.Dice = roll
	}
}

// Action appends r to the current turn. Actions before the first turn open round 0.
func (l *Log) Action(r game.Record) {
	t := l.current()
	if t == nil {
		l.NextTurn(0, r.Player)
		t = l.current()
	}
	round := l.Rounds[len(l.Rounds)-1].Round
	t.Actions = append(t.Actions, Record{
		Game:   l.Game,
		Round:  round,
		Turn:   t.Turn,
		Name:   r.Name,
		Player: r.Player,
		Fields: r.Fields,
	})
}

// Actions returns every recorded action in order.
func (l *Log) Actions() []Record {
	var out []Record
	for _, r := range l.Rounds {
		for _, t := range r.Turns {
			out = append(out, t.Actions...)
		}
	}
	return out
}

func (l *Log) current() *Turn {
	if len(l.Rounds) == 0 {
		return nil
	}
	r := &l.Rounds[len(l.Rounds)-1]
	if len(r.Turns) == 0 {
		return nil
	}
	return &r.Turns[len(r.Turns)-1]
}
