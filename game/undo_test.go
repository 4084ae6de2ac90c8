package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Temporary application:
- TmpDo then Undo restores the board for every action a player could pick
- resources are conserved between hands and bank
- Probe never leaves a trace
*/

type fingerprint struct {
	hands      []Hand
	bank       Bundle
	stack      []DevCard
	bandit     int
	longest    int
	army       int
	crossroads []crossroadPrint
	roads      []int
	robbed     []bool
}

type crossroadPrint struct {
	owner    int
	building Building
	legal    bool
	distance []int
}

func takeFingerprint(b *Board) fingerprint {
	f := fingerprint{
		hands:   append([]Hand(nil), b.Hands...),
		bank:    b.Bank,
		stack:   append([]DevCard(nil), b.Stack.cards...),
		bandit:  b.Bandit.ID,
		longest: b.LongestRoadOwner,
		army:    b.LargestArmyOwner,
	}
	b.EachCrossroad(func(cr *Crossroad) {
		f.crossroads = append(f.crossroads, crossroadPrint{
			owner:    cr.Owner,
			building: cr.Building,
			legal:    cr.Legal,
			distance: append([]int(nil), cr.Distance...),
		})
	})
	for _, r := range b.Roads {
		f.roads = append(f.roads, r.Owner)
	}
	for _, t := range b.Terrains {
		f.robbed = append(f.robbed, t.Bandit)
	}
	return f
}

// richBoard is a mid-game position where player 0 can afford every kind of action.
func richBoard(t *testing.T) *Board {
	t.Helper()
	b := newTestBoard(t, 3)
	mustDo(t, b, BuildFirstSettlement{Player: 0, At: loc(0, 0)})
	mustDo(t, b, BuildFreeRoad{Player: 0, Road: roadID(t, b, loc(0, 0), loc(1, 1))})
	mustDo(t, b, BuildFirstSettlement{Player: 1, At: loc(2, 1)})
	mustDo(t, b, BuildSecondSettlement{Player: 2, At: loc(3, 3)})
	b.Opening = false

	grant(b, 0, Bundle{Wood: 4, Clay: 4, Sheep: 3, Wheat: 4, Iron: 4})
	grant(b, 1, Bundle{Wheat: 2, Sheep: 1})
	b.Hands[0].Ready = [NumDevCards]int{Knight: 1, VictoryPoint: 1, Monopoly: 1, RoadBuilding: 1, YearOfPlenty: 1}
	b.Hands[0].Army = 2
	return b
}

func assertUndoRestores(t *testing.T, b *Board, actions []Action) {
	t.Helper()
	before := takeFingerprint(b)
	for _, a := range actions {
		s, err := TmpDo(b, a)
		require.NoError(t, err, "%s should be legal", a.Kind())
		Undo(b, s)
		require.Equal(t, before, takeFingerprint(b), "%#v was not undone", a)
	}
}

func TestUndoRestoresBoard(t *testing.T) {
	t.Run("every legal action", func(t *testing.T) {
		b := richBoard(t)
		actions := LegalActions(b, 0)
		kinds := map[Kind]bool{}
		for _, a := range actions {
			kinds[a.Kind()] = true
		}
		for _, k := range []Kind{KindBuildRoad, KindBuildCity, KindTrade, KindBuyDevCard, KindUseKnight,
			KindUseMonopoly, KindUseYearOfPlenty, KindUseRoadBuilding, KindUseVictoryPoint} {
			require.True(t, kinds[k], "%s should be offered", k)
		}
		assertUndoRestores(t, b, actions)
	})

	t.Run("settlement and title", func(t *testing.T) {
		b := richBoard(t)
		own(t, b, 0, loc(0, 0), loc(1, 0), loc(2, 0), loc(3, 0))
		b.Hands[0].LongestRoad = 4
		before := takeFingerprint(b)

		s, err := TmpDo(b, BuildRoad{Player: 0, Road: roadID(t, b, loc(3, 0), loc(4, 0))})
		require.NoError(t, err)
		require.Equal(t, 0, b.LongestRoadOwner)
		require.Equal(t, 3, b.Hands[0].Points)
		Undo(b, s)
		require.Equal(t, before, takeFingerprint(b))

		assertUndoRestores(t, b, []Action{
			BuildSettlement{Player: 0, At: loc(3, 0)},
			BuildCity{Player: 0, At: loc(0, 0)},
		})
	})

	t.Run("bandit and discards", func(t *testing.T) {
		b := richBoard(t)
		assertUndoRestores(t, b, BanditActions(b, 0))
		assertUndoRestores(t, b, []Action{ThrowCards{Player: 0, Cards: Discard(b, 0, b.Hands[0].DiscardCount())}})
	})

	t.Run("opening", func(t *testing.T) {
		b := newTestBoard(t, 2)
		actions := OpeningActions(b, 0, true)
		require.NotEmpty(t, actions)
		assertUndoRestores(t, b, actions)
		mustDo(t, b, BuildSecondSettlement{Player: 0, At: loc(2, 1)})
		assertUndoRestores(t, b, OpeningRoads(b, 0, loc(2, 1)))
	})

	t.Run("knight takes the largest army", func(t *testing.T) {
		b := richBoard(t)
		before := takeFingerprint(b)
		s, err := TmpDo(b, UseKnight{Player: 0, Terrain: 0, Victim: 1})
		require.NoError(t, err)
		require.Equal(t, 0, b.LargestArmyOwner)
		require.Equal(t, 3, b.Hands[0].Points)
		Undo(b, s)
		require.Equal(t, before, takeFingerprint(b))
	})
}

func TestResourceConservation(t *testing.T) {
	b := richBoard(t)
	conserved := func() {
		t.Helper()
		for _, r := range Resources {
			total := b.Bank[r]
			for i := range b.Hands {
				total += b.Hands[i].Resources[r]
			}
			require.Equal(t, 19, total, "%s tokens", r)
		}
	}

	conserved()
	for _, a := range LegalActions(b, 0) {
		if !IsLegal(b, a) {
			continue
		}
		_, err := Do(b, a, Env{})
		require.NoError(t, err)
		conserved()
	}
	for roll := 2; roll <= 12; roll++ {
		b.Produce(roll)
		conserved()
	}
}

func TestProbe(t *testing.T) {
	b := richBoard(t)
	before := takeFingerprint(b)

	gain, err := Probe(b, UseVictoryPoint{Player: 0}, EvaluatePoints)
	require.NoError(t, err)
	require.Greater(t, gain, 0.0)
	require.Equal(t, before, takeFingerprint(b))

	_, err = Probe(b, BuildCity{Player: 0, At: loc(2, 1)}, EvaluatePoints)
	require.ErrorIs(t, err, ErrIllegalAction)
	require.Equal(t, before, takeFingerprint(b))
}
