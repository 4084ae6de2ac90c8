package agent

import (
	"catan/game"
	"catan/stats"
)

type statistics struct {
	table *stats.Table
}

// NewStatistics returns an agent that plays the action whose comparison keys
// won most often in past games.
func NewStatistics(table *stats.Table) Agent {
	return statistics{table: table}
}

func (s statistics) Choose(b *game.Board, actions []game.Action) game.Action {
	return findMax(actions, func(a game.Action) float64 {
		return s.table.Ratio(game.Keys(b, a))
	})
}

func (s statistics) Discard(b *game.Board, player, count int) game.Bundle {
	return game.Discard(b, player, count)
}
