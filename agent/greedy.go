package agent

import (
	"math"

	"catan/game"
)

type greedy struct {
	evaluate game.Evaluate
}

// NewGreedy returns an agent that probes every action and plays the one that
// raises evaluate the most. Listing DoNothing first makes it end the turn once
// nothing improves its position.
func NewGreedy(evaluate game.Evaluate) Agent {
	return greedy{evaluate: evaluate}
}

func (g greedy) Choose(b *game.Board, actions []game.Action) game.Action {
	return findMax(actions, func(a game.Action) float64 {
		delta, err := game.Probe(b, a, g.evaluate)
		if err != nil {
			return math.Inf(-1)
		}
		return delta
	})
}

func (g greedy) Discard(b *game.Board, player, count int) game.Bundle {
	return game.Discard(b, player, count)
}
