package game

import "math"

// EvaluatePoints compares the player's victory points with the best opponent's
// to produce a score between -1 and 1.
func EvaluatePoints(b *Board, player int) float64 {
	best := 0
	for i := range b.Hands {
		if i != player {
			best = max(best, b.Hands[i].Points)
		}
	}
	return normalize(float64(b.Hands[player].Points), float64(best))
}

// EvaluateProduction scores the player's own position: points first, then
// production weighted by scarcity, reachable building spots, development and
// the resources in hand.
func EvaluateProduction(b *Board, player int) float64 {
	h := &b.Hands[player]
	score := 10 * float64(h.Points)

	for _, r := range Resources {
		score += 4 * float64(h.Production[r]) * h.ResourceValue[r] / 36
		// tokens beyond three add nothing
		score += 0.2 * h.ResourceValue[r] * math.Min(float64(h.Resources[r]), 3)
	}

	score += math.Min(float64(spots(b, player)), 2)
	score += 0.3 * float64(h.Army)
	score += 0.1 * float64(h.LongestRoad)
	for card := range h.Ready {
		score += 0.5 * float64(h.Ready[card]+h.Fresh[card])
	}
	return score
}

// spots counts the empty crossroads player could settle on right now, ignoring cost.
func spots(b *Board, player int) int {
	n := 0
	b.EachCrossroad(func(cr *Crossroad) {
		if cr.Owner == NoPlayer && cr.Legal && cr.hasRoadOf(player) {
			n++
		}
	})
	return n
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
