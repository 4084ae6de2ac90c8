package agent

import "catan/game"

type random struct {
	rng game.Rand
}

// NewRandom returns an agent that picks uniformly among the legal actions.
func NewRandom(rng game.Rand) Agent {
	return random{rng: rng}
}

func (r random) Choose(b *game.Board, actions []game.Action) game.Action {
	return actions[r.rng.Intn(len(actions))]
}

// Discard throws count tokens drawn uniformly from the hand.
func (r random) Discard(b *game.Board, player, count int) game.Bundle {
	left := b.Hand(player).Resources
	var cards game.Bundle
	for ; count > 0 && left.Total() > 0; count-- {
		idx := r.rng.Intn(left.Total())
		for _, res := range game.Resources {
			if idx < left[res] {
				left[res]--
				cards[res]++
				break
			}
			idx -= left[res]
		}
	}
	return cards
}
