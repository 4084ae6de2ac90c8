package game

import (
	"fmt"

	"catan/utils"
)

// Check reports why a cannot be applied to b, or nil when it is legal. It never mutates b.
func Check(b *Board, a Action) error {
	if a == nil {
		return ErrUnknownAction
	}
	p := a.Actor()
	if p < 0 || p >= len(b.Hands) {
		return illegal("unknown player %d", p)
	}
	h := &b.Hands[p]

	switch a := a.(type) {
	case DoNothing:
		return nil

	case UseKnight:
		if h.Ready[Knight] == 0 {
			return fmt.Errorf("%w: knight", ErrCardNotReady)
		}
		return checkBandit(b, p, a.Terrain, a.Victim)

	case MoveBandit:
		return checkBandit(b, p, a.Terrain, a.Victim)

	case UseMonopoly:
		if h.Ready[Monopoly] == 0 {
			return fmt.Errorf("%w: monopoly", ErrCardNotReady)
		}
		if !a.Resource.Producible() {
			return illegal("cannot monopolize %s", a.Resource)
		}
		return nil

	case UseYearOfPlenty:
		if h.Ready[YearOfPlenty] == 0 {
			return fmt.Errorf("%w: year of plenty", ErrCardNotReady)
		}
		if !a.First.Producible() || !a.Second.Producible() {
			return illegal("cannot take %s and %s", a.First, a.Second)
		}
		var want Bundle
		want[a.First]++
		want[a.Second]++
		if !b.Bank.Covers(want) {
			return ErrBankEmpty
		}
		return nil

	case UseRoadBuilding:
		if h.Ready[RoadBuilding] == 0 {
			return fmt.Errorf("%w: road building", ErrCardNotReady)
		}
		if a.First == a.Second {
			return illegal("road %d chosen twice", a.First)
		}
		if h.RoadPieces < 2 {
			return ErrNoPieces
		}
		if err := checkRoad(b, p, a.First); err != nil {
			return err
		}
		return checkRoad(b, p, a.Second)

	case UseVictoryPoint:
		if h.Ready[VictoryPoint] == 0 {
			return fmt.Errorf("%w: victory point", ErrCardNotReady)
		}
		return nil

	case BuildSettlement:
		if err := checkSpot(b, a.At); err != nil {
			return err
		}
		if !b.Crossroad(a.At).hasRoadOf(p) {
			return illegal("%s is not connected to a road of player %d", a.At, p)
		}
		if h.SettlementPieces == 0 {
			return ErrNoPieces
		}
		if !h.CanPay(SettlementPrice) {
			return ErrInsufficientResources
		}
		return nil

	case BuildFirstSettlement:
		return checkOpeningSpot(b, h, a.At)

	case BuildSecondSettlement:
		return checkOpeningSpot(b, h, a.At)

	case BuildCity:
		cr := b.Crossroad(a.At)
		if cr == nil {
			return illegal("no crossroad at %s", a.At)
		}
		if cr.Owner != p || cr.Building != Settlement {
			return illegal("no settlement of player %d at %s", p, a.At)
		}
		if h.CityPieces == 0 {
			return ErrNoPieces
		}
		if !h.CanPay(CityPrice) {
			return ErrInsufficientResources
		}
		return nil

	case BuildRoad:
		if h.RoadPieces == 0 {
			return ErrNoPieces
		}
		if !h.CanPay(RoadPrice) {
			return ErrInsufficientResources
		}
		return checkRoad(b, p, a.Road)

	case BuildFreeRoad:
		if !b.Opening {
			return illegal("free roads are only placed during the opening")
		}
		if h.RoadPieces == 0 {
			return ErrNoPieces
		}
		return checkRoad(b, p, a.Road)

	case Trade:
		if !a.Src.Producible() || !a.Dst.Producible() || a.Src == a.Dst {
			return illegal("cannot trade %s for %s", a.Src, a.Dst)
		}
		if a.Take <= 0 {
			return illegal("trade must take at least one token")
		}
		if a.Rate < h.TradeRate(a.Src) {
			return illegal("rate %d is below %d for %s", a.Rate, h.TradeRate(a.Src), a.Src)
		}
		// Take*Rate may overflow
		if a.Take > h.Resources[a.Src]/a.Rate {
			return ErrInsufficientResources
		}
		if b.Bank[a.Dst] < a.Take {
			return ErrBankEmpty
		}
		return nil

	case BuyDevCard:
		// The stack is checked before payment
		if b.Stack.Len() == 0 {
			return ErrExhaustedDevStack
		}
		if !h.CanPay(DevCardPrice) {
			return ErrInsufficientResources
		}
		return nil

	case ThrowCards:
		for _, n := range a.Cards {
			if n < 0 {
				return illegal("negative discard")
			}
		}
		if count := h.DiscardCount(); count == 0 || a.Cards.Total() != count {
			return illegal("player %d must throw %d cards, got %d", p, count, a.Cards.Total())
		}
		if !h.CanPay(a.Cards) {
			return ErrInsufficientResources
		}
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnknownAction, a)
}

// IsLegal reports whether a can be applied to b.
func IsLegal(b *Board, a Action) bool {
	return Check(b, a) == nil
}

// checkSpot enforces the spacing rule: the crossroad and all its neighbors are empty.
func checkSpot(b *Board, at Location) error {
	cr := b.Crossroad(at)
	if cr == nil {
		return illegal("no crossroad at %s", at)
	}
	if cr.Owner != NoPlayer || !cr.Legal {
		return illegal("%s is too close to a building", at)
	}
	return nil
}

func checkOpeningSpot(b *Board, h *Hand, at Location) error {
	if !b.Opening {
		return illegal("free settlements are only placed during the opening")
	}
	if h.SettlementPieces == 0 {
		return ErrNoPieces
	}
	return checkSpot(b, at)
}

// checkRoad requires an unowned road touching a building of player, or a road
// of player through a crossroad no opponent owns.
func checkRoad(b *Board, player, id int) error {
	r := b.Road(id)
	if r == nil {
		return illegal("no road %d", id)
	}
	if r.Owner != NoPlayer {
		return illegal("road %d belongs to player %d", id, r.Owner)
	}
	for _, end := range r.Ends {
		if end.Owner == player {
			return nil
		}
		if end.passable(player) && end.hasRoadOf(player) {
			return nil
		}
	}
	return illegal("road %d is not connected to player %d", id, player)
}

func checkBandit(b *Board, player, terrain, victim int) error {
	t := b.Terrain(terrain)
	if t == nil {
		return illegal("no terrain %d", terrain)
	}
	if t == b.Bandit {
		return illegal("bandit already on terrain %d", terrain)
	}
	victims := b.Victims(t, player)
	if len(victims) == 0 {
		if victim != NoPlayer {
			return illegal("player %d has no building next to terrain %d", victim, terrain)
		}
		return nil
	}
	if utils.FindIndex(victims, victim) < 0 {
		return illegal("player %d cannot be robbed on terrain %d", victim, terrain)
	}
	return nil
}
