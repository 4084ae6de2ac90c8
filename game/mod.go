package game

// Renderer draws the board for an observer. Every call must be safe to ignore:
// the game never depends on what a renderer does.
type Renderer interface {
	Action(name string)
	Settlement(player int, at Location)
	City(player int, at Location)
	Road(player int, from, to Location)
	Resources(player int, resources Bundle)
	Highlight(at Location)
}

// Record is the structured entry produced by one applied action.
type Record struct {
	Name   string
	Player int
	Fields map[string]any
}

// Sink receives the record of every applied action.
type Sink interface {
	Action(r Record)
}

// StatisticsSink receives the comparison keys of every applied action together
// with the acting player.
type StatisticsSink interface {
	Save(keys []any, player int)
}

// Env carries the collaborators an applied action reports to. Nil members are skipped.
type Env struct {
	Renderer   Renderer
	Sink       Sink
	Statistics StatisticsSink
}

// Evaluate scores the board from player's perspective, higher is better.
type Evaluate func(b *Board, player int) float64

// Observer is told the layout, when a turn starts, what the dice showed and
// how the game ended. Sinks may implement it to structure their records by
// round and turn.
type Observer interface {
	Start(layout Layout)
	NextTurn(round, player int)
	Dice(roll int)
	Finish(winner, rounds int)
}
