package engine

import (
	"testing"

	"catan/agent"
	"catan/game"
	"catan/meta"
	"catan/record"

	"github.com/stretchr/testify/require"
)

/**
Engine loop:
- the opening gives every player two settlements, two roads and two points
- a game nobody wins stops at the round cap
- ready victory points are cashed in when they win
- only the active player may act
- a 7 makes large hands discard and moves the bandit
- greedy games keep resources conserved and buildings spaced
*/

// first always picks the first offered action: the first free spot, the first
// road, and DoNothing during a regular turn.
type first struct{}

func (first) Choose(b *game.Board, actions []game.Action) game.Action { return actions[0] }
func (first) Discard(b *game.Board, player, count int) game.Bundle {
	return game.Discard(b, player, count)
}

// cheater always picks an action for a player that does not exist and never
// discards anything.
type cheater struct{}

func (cheater) Choose(b *game.Board, actions []game.Action) game.Action {
	return game.DoNothing{Player: -1}
}
func (cheater) Discard(b *game.Board, player, count int) game.Bundle { return game.Bundle{} }

func config(players, rounds int) meta.Config {
	cfg := meta.Default()
	cfg.Players = players
	cfg.MaxRounds = rounds
	cfg.Agents = nil
	return cfg
}

func agents(n int, a agent.Agent) []agent.Agent {
	out := make([]agent.Agent, n)
	for i := range out {
		out[i] = a
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("agent count must match", func(t *testing.T) {
		_, err := New(config(3, 5), agents(2, first{}))
		require.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := New(config(5, 5), agents(5, first{}))
		require.Error(t, err)
	})

	t.Run("options", func(t *testing.T) {
		cfg := config(2, 5)
		cfg.WinPoints = 6
		layout := game.RandomLayout(game.NewRand(4))
		e, err := New(cfg, agents(2, first{}), WithLayout(layout), WithRand(game.NewRand(9)))
		require.NoError(t, err)
		require.Equal(t, 6, e.Board.WinPoints)
		for i, tr := range e.Board.Terrains {
			require.Equal(t, layout.Resources[i], tr.Resource)
			require.Equal(t, layout.Numbers[i], tr.Number)
		}
	})
}

func TestOpening(t *testing.T) {
	e, err := New(config(4, 5), agents(4, first{}))
	require.NoError(t, err)
	e.opening()

	b := e.Board
	require.False(t, b.Opening)
	for p := 0; p < 4; p++ {
		h := b.Hand(p)
		require.Equal(t, 3, h.SettlementPieces, "player %d", p)
		require.Equal(t, 13, h.RoadPieces, "player %d", p)
		require.Equal(t, 2, h.Points, "player %d", p)
	}
	b.EachCrossroad(func(cr *game.Crossroad) {
		if cr.Owner == game.NoPlayer {
			return
		}
		for _, n := range cr.Neighbors {
			require.Equal(t, game.NoPlayer, n.Crossroad.Owner, "%s and %s are both built", cr.Location, n.Crossroad.Location)
		}
	})
}

func TestRunStopsAtRoundCap(t *testing.T) {
	log := record.NewLog(2)
	e, err := New(config(2, 5), agents(2, first{}), WithSink(log))
	require.NoError(t, err)

	winner, rounds := e.Run()
	require.Equal(t, game.NoPlayer, winner)
	require.Equal(t, 5, rounds)
	require.Len(t, log.Rounds, 6, "the opening is round 0")
	require.Len(t, log.Rounds[0].Turns, 4, "two placements per player")
	require.Equal(t, game.DefaultLayout(), log.Layout)
	require.Equal(t, &record.Ending{Winner: game.NoPlayer, Rounds: 5}, log.Ending)
	for _, r := range log.Rounds[1:] {
		require.Len(t, r.Turns, 2)
		for _, turn := range r.Turns {
			require.GreaterOrEqual(t, turn.Dice, 2)
			require.LessOrEqual(t, turn.Dice, 12)
		}
	}
}

func TestClaimVictory(t *testing.T) {
	e, err := New(config(2, 5), agents(2, first{}))
	require.NoError(t, err)
	e.opening()

	h := e.Board.Hand(1)
	h.Points = 8
	h.Ready[game.VictoryPoint] = 1
	require.False(t, e.claimVictory(1), "nine points do not win")
	require.Equal(t, 1, h.Ready[game.VictoryPoint], "the card is kept for later")

	h.Fresh[game.VictoryPoint] = 1
	require.True(t, e.playTurn(1))
	require.Equal(t, 1, e.Winner())
	require.Equal(t, 10, h.Points)
}

func TestPlayRejectsInactivePlayer(t *testing.T) {
	e, err := New(config(2, 5), []agent.Agent{cheater{}, first{}})
	require.NoError(t, err)

	e.Turn = 0
	require.ErrorIs(t, e.Play(game.DoNothing{Player: 1}), game.ErrIllegalAction)
	require.ErrorIs(t, e.Play(nil), game.ErrUnknownAction)
	require.NoError(t, e.Play(game.DoNothing{Player: 0}))

	t.Run("illegal picks fall back to the first action", func(t *testing.T) {
		actions := game.OpeningActions(e.Board, 0, false)
		require.Equal(t, actions[0], e.choose(0, actions))
		require.Equal(t, game.DoNothing{Player: 0}, e.choose(0, nil))
	})
}

func TestRobber(t *testing.T) {
	e, err := New(config(3, 5), []agent.Agent{first{}, cheater{}, first{}})
	require.NoError(t, err)
	e.opening()
	b := e.Board

	for p := 0; p < 3; p++ {
		h := b.Hand(p)
		b.Bank = b.Bank.Add(h.Resources)
		h.Resources = game.Bundle{}
	}
	give := func(p int, res game.Bundle) {
		b.Hand(p).Receive(res)
		b.Bank = b.Bank.Sub(res)
	}
	give(1, game.Bundle{game.Wood: 5, game.Iron: 4})
	give(2, game.Bundle{game.Sheep: 7})
	before := b.Bandit.ID
	victim := game.BanditActions(b, 0)[0].(game.MoveBandit).Victim

	want := []int{0, 5, 7}
	if victim != game.NoPlayer {
		want[victim]--
		want[0]++
	}

	e.robber(0)
	require.Equal(t, want[1], b.Hand(1).ResourceCount(), "a rejected discard falls back to the default one")
	require.Equal(t, want[2], b.Hand(2).ResourceCount(), "seven cards are safe")
	require.Equal(t, want[0], b.Hand(0).ResourceCount())
	require.NotEqual(t, before, b.Bandit.ID)
	for _, r := range game.Resources {
		total := b.Bank[r]
		for p := 0; p < 3; p++ {
			total += b.Hand(p).Resources[r]
		}
		require.Equal(t, meta.BankSize, total, "%s tokens", r)
	}
}

func TestGreedyGame(t *testing.T) {
	cfg := config(4, 60)
	e, err := New(cfg, agents(4, agent.NewGreedy(game.EvaluateProduction)))
	require.NoError(t, err)

	winner, rounds := e.Run()
	require.LessOrEqual(t, rounds, 60)
	b := e.Board
	if winner != game.NoPlayer {
		require.GreaterOrEqual(t, b.Hand(winner).Points, cfg.WinPoints)
	}

	for _, r := range game.Resources {
		total := b.Bank[r]
		for p := 0; p < 4; p++ {
			require.GreaterOrEqual(t, b.Hand(p).Resources[r], 0)
			total += b.Hand(p).Resources[r]
		}
		require.Equal(t, meta.BankSize, total, "%s tokens", r)
	}
	b.EachCrossroad(func(cr *game.Crossroad) {
		if cr.Owner == game.NoPlayer {
			return
		}
		for _, n := range cr.Neighbors {
			require.Equal(t, game.NoPlayer, n.Crossroad.Owner)
		}
	})
}
