package agent

import (
	"fmt"

	"catan/game"
	"catan/meta"
	"catan/stats"
)

type Agent interface {
	// Choose returns one of actions, which is never empty
	Choose(b *game.Board, actions []game.Action) game.Action
	// Discard returns count resources of player to throw after a 7
	Discard(b *game.Board, player, count int) game.Bundle
}

// New returns the agent of the given kind. The statistics agent reads table.
func New(kind string, rng game.Rand, table *stats.Table) (Agent, error) {
	switch kind {
	case meta.GreedyAgent:
		return NewGreedy(game.EvaluateProduction), nil
	case meta.RandomAgent:
		return NewRandom(rng), nil
	case meta.StatisticsAgent:
		if table == nil {
			return nil, fmt.Errorf("statistics agent needs a statistics table")
		}
		return NewStatistics(table), nil
	}
	return nil, fmt.Errorf("unknown agent %q", kind)
}

// findMax returns the first action with the highest score.
func findMax(actions []game.Action, score func(game.Action) float64) game.Action {
	best := actions[0]
	bestScore := score(best)
	for _, a := range actions[1:] {
		if s := score(a); s > bestScore {
			best, bestScore = a, s
		}
	}
	return best
}
