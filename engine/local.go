package engine

import (
	"catan/game"
	"catan/meta"

	"github.com/rs/zerolog/log"
)

// Run executes the entire game loop until a winner is found or the round cap is
// reached. It returns the winner (NoPlayer at the cap) and the rounds played.
func (e *Engine) Run() (int, int) {
	log.Info().Msgf("game started with %d players", len(e.Agents))
	if o := e.observer(); o != nil {
		o.Start(*e.layout)
	}
	e.opening()

	for e.Round = 1; e.Round <= e.maxRounds; e.Round++ {
		for p := range e.Agents {
			if !e.playTurn(p) {
				continue
			}
			winner := e.Winner()
			log.Info().Msgf("player %d won with %d points in round %d", winner, e.Board.Hand(winner).Points, e.Round)
			e.finish(winner, e.Round)
			return winner, e.Round
		}
	}
	log.Info().Msgf("stopped after %d rounds (no winner)", e.maxRounds)
	e.finish(game.NoPlayer, e.maxRounds)
	return game.NoPlayer, e.maxRounds
}

func (e *Engine) finish(winner, rounds int) {
	if o := e.observer(); o != nil {
		o.Finish(winner, rounds)
	}
}

// opening lets every player place a free settlement and road, in turn order,
// then again in reverse order. The second settlement produces.
func (e *Engine) opening() {
	b := e.Board
	n := len(e.Agents)
	order := make([]int, 0, 2*n)
	for p := 0; p < n; p++ {
		order = append(order, p)
	}
	for p := n - 1; p >= 0; p-- {
		order = append(order, p)
	}

	e.Round = 0
	for i, p := range order {
		e.nextTurn(p)
		settlement := e.choose(p, game.OpeningActions(b, p, i >= n))
		e.apply(settlement)
		if at, ok := settledAt(settlement); ok {
			e.apply(e.choose(p, game.OpeningRoads(b, p, at)))
		}
	}
	b.Opening = false
}

func settledAt(a game.Action) (game.Location, bool) {
	switch a := a.(type) {
	case game.BuildFirstSettlement:
		return a.At, true
	case game.BuildSecondSettlement:
		return a.At, true
	}
	return game.Location{}, false
}

// playTurn plays the turn of player and reports whether the game is won.
func (e *Engine) playTurn(player int) bool {
	b := e.Board
	e.nextTurn(player)
	b.StartTurn(player)
	if e.claimVictory(player) {
		return true
	}

	roll := e.Dice.Roll()
	log.Debug().Msgf("round %d: player %d rolled %d", e.Round, player, roll)
	if o := e.observer(); o != nil {
		o.Dice(roll)
	}
	if roll == 7 {
		e.robber(player)
	} else {
		b.Produce(roll)
	}

	for i := 0; i < meta.MaxActionsPerTurn; i++ {
		a := e.choose(player, game.LegalActions(b, player))
		if err := e.Play(a); err != nil {
			log.Error().Err(err).Msgf("player %d: %s failed", player, a.Kind())
			break
		}
		if e.Winner() != game.NoPlayer {
			return true
		}
		if a.Kind() == game.KindDoNothing {
			break
		}
	}
	return e.Winner() != game.NoPlayer
}

// choose asks the agent of player to pick among actions. An illegal pick is
// replaced by the first action, which is DoNothing during a regular turn.
func (e *Engine) choose(player int, actions []game.Action) game.Action {
	if len(actions) == 0 {
		return game.DoNothing{Player: player}
	}
	a := e.Agents[player].Choose(e.Board, actions)
	if err := game.Check(e.Board, a); err != nil {
		log.Warn().Err(err).Msgf("player %d chose an illegal action, falling back to %s", player, actions[0].Kind())
		return actions[0]
	}
	return a
}

// claimVictory plays the ready victory point cards of player when they are
// enough to win.
func (e *Engine) claimVictory(player int) bool {
	h := e.Board.Hand(player)
	if h.Ready[game.VictoryPoint] == 0 || h.Points+h.Ready[game.VictoryPoint] < e.Board.WinPoints {
		return false
	}
	for n := h.Ready[game.VictoryPoint]; n > 0; n-- {
		e.apply(game.UseVictoryPoint{Player: player})
	}
	return e.Winner() != game.NoPlayer
}

// robber handles a 7: every hand over the limit throws half, then player moves the bandit.
func (e *Engine) robber(player int) {
	b := e.Board
	for i, ag := range e.Agents {
		count := b.Hand(i).DiscardCount()
		if count == 0 {
			continue
		}
		a := game.ThrowCards{Player: i, Cards: ag.Discard(b, i, count)}
		if err := game.Check(b, a); err != nil {
			log.Warn().Err(err).Msgf("player %d discard rejected, throwing default cards", i)
			a.Cards = game.Discard(b, i, count)
		}
		e.apply(a)
	}
	e.apply(e.choose(player, game.BanditActions(b, player)))
}

func (e *Engine) apply(a game.Action) {
	if err := e.do(a); err != nil {
		log.Error().Err(err).Msgf("player %d: %s failed", a.Actor(), a.Kind())
	}
}
