package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Production and turn bookkeeping:
- settlements take one token and cities two
- a resource the bank cannot cover goes to nobody unless one player is owed it
- the winner is found at the threshold
*/

func TestProduce(t *testing.T) {
	b := newTestBoard(t, 2)
	mustDo(t, b, BuildFirstSettlement{Player: 0, At: loc(0, 0)})
	mustDo(t, b, BuildFirstSettlement{Player: 1, At: loc(2, 1)})

	t.Run("one token per settlement", func(t *testing.T) {
		got := b.Produce(10)
		require.Equal(t, []Bundle{{Iron: 1}, {Iron: 1}}, got)
		require.Equal(t, 17, b.Bank[Iron])
	})

	t.Run("cities take two", func(t *testing.T) {
		b.Crossroad(loc(2, 1)).build(1)
		got := b.Produce(6)
		require.Equal(t, Bundle{Clay: 2}, got[1])
		require.Equal(t, Bundle{}, got[0])
	})

	t.Run("nothing on a roll nobody touches", func(t *testing.T) {
		got := b.Produce(11)
		require.Equal(t, []Bundle{{}, {}}, got)
	})

	t.Run("shortage shared by two players", func(t *testing.T) {
		b.Bank[Iron] = 1
		got := b.Produce(10)
		require.Equal(t, []Bundle{{}, {}}, got, "three iron are owed, nobody gets any")
		require.Equal(t, 1, b.Bank[Iron])
	})

	t.Run("shortage with a single claimant", func(t *testing.T) {
		b.Bank[Clay] = 1
		got := b.Produce(6)
		require.Equal(t, Bundle{Clay: 1}, got[1], "the only player owed clay takes the rest")
		require.Equal(t, 0, b.Bank[Clay])
	})
}

func TestWinner(t *testing.T) {
	b := newTestBoard(t, 3)
	require.Equal(t, NoPlayer, b.Winner())

	b.Hands[2].Points = 10
	require.Equal(t, 2, b.Winner())

	b.WinPoints = 12
	require.Equal(t, NoPlayer, b.Winner())
}

func TestStartTurnWakesCards(t *testing.T) {
	b := newTestBoard(t, 2)
	b.Hands[1].Fresh[Monopoly] = 1
	b.Hands[1].Ready[Knight] = 1

	b.StartTurn(0)
	require.Equal(t, 1, b.Hands[1].Fresh[Monopoly], "only the active player's cards wake up")

	b.StartTurn(1)
	require.Equal(t, [NumDevCards]int{Knight: 1, Monopoly: 1}, b.Hands[1].Ready)
	require.Equal(t, [NumDevCards]int{}, b.Hands[1].Fresh)
	require.Equal(t, 2, b.Hands[1].CardCount())
}

func TestDiscardPrefersPiles(t *testing.T) {
	b := newTestBoard(t, 2)
	grant(b, 0, Bundle{Wood: 5, Clay: 2, Iron: 3})

	cards := Discard(b, 0, 5)
	require.Equal(t, 5, cards.Total())
	require.True(t, b.Hands[0].Resources.Covers(cards))
	require.GreaterOrEqual(t, cards[Wood], 2, "the largest pile goes first")
	require.NoError(t, Check(b, ThrowCards{Player: 0, Cards: cards}))
}
