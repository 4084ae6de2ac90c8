package game

// LegalActions lists every action player may take during a regular turn.
// DoNothing always comes first.
func LegalActions(b *Board, player int) []Action {
	h := &b.Hands[player]
	candidates := []Action{DoNothing{Player: player}}

	b.EachCrossroad(func(cr *Crossroad) {
		switch {
		case cr.Owner == NoPlayer && cr.Legal:
			candidates = append(candidates, BuildSettlement{Player: player, At: cr.Location})
		case cr.Owner == player && cr.Building == Settlement:
			candidates = append(candidates, BuildCity{Player: player, At: cr.Location})
		}
	})

	roads := legalRoads(b, player)
	if h.CanPay(RoadPrice) {
		for _, id := range roads {
			candidates = append(candidates, BuildRoad{Player: player, Road: id})
		}
	}

	for _, src := range Resources {
		rate := h.TradeRate(src)
		if h.Resources[src] < rate {
			continue
		}
		for _, dst := range Resources {
			if dst != src {
				candidates = append(candidates, Trade{Player: player, Src: src, Dst: dst, Take: 1, Rate: rate})
			}
		}
	}

	candidates = append(candidates, BuyDevCard{Player: player})

	if h.Ready[Knight] > 0 {
		for _, m := range banditMoves(b, player) {
			candidates = append(candidates, UseKnight(m))
		}
	}
	if h.Ready[Monopoly] > 0 {
		for _, r := range Resources {
			candidates = append(candidates, UseMonopoly{Player: player, Resource: r})
		}
	}
	if h.Ready[YearOfPlenty] > 0 {
		for i, first := range Resources {
			for _, second := range Resources[i:] {
				candidates = append(candidates, UseYearOfPlenty{Player: player, First: first, Second: second})
			}
		}
	}
	if h.Ready[RoadBuilding] > 0 {
		for i, first := range roads {
			for _, second := range roads[i+1:] {
				candidates = append(candidates, UseRoadBuilding{Player: player, First: first, Second: second})
			}
		}
	}
	if h.Ready[VictoryPoint] > 0 {
		candidates = append(candidates, UseVictoryPoint{Player: player})
	}

	return filterLegal(b, candidates)
}

// BanditActions lists the MoveBandit choices of player after a 7.
func BanditActions(b *Board, player int) []Action {
	var actions []Action
	for _, m := range banditMoves(b, player) {
		actions = append(actions, m)
	}
	return actions
}

// OpeningActions lists the free settlements player may place in the first or
// second opening round.
func OpeningActions(b *Board, player int, second bool) []Action {
	var candidates []Action
	b.EachCrossroad(func(cr *Crossroad) {
		if cr.Owner != NoPlayer || !cr.Legal {
			return
		}
		if second {
			candidates = append(candidates, BuildSecondSettlement{Player: player, At: cr.Location})
		} else {
			candidates = append(candidates, BuildFirstSettlement{Player: player, At: cr.Location})
		}
	})
	return filterLegal(b, candidates)
}

// OpeningRoads lists the free roads leaving the settlement player just placed at.
func OpeningRoads(b *Board, player int, at Location) []Action {
	cr := b.Crossroad(at)
	if cr == nil {
		return nil
	}
	var candidates []Action
	for _, n := range cr.Neighbors {
		candidates = append(candidates, BuildFreeRoad{Player: player, Road: n.Road.ID})
	}
	return filterLegal(b, candidates)
}

func legalRoads(b *Board, player int) []int {
	var ids []int
	for _, r := range b.Roads {
		if checkRoad(b, player, r.ID) == nil {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// banditMoves pairs every terrain the bandit may move to with each possible victim.
func banditMoves(b *Board, player int) []MoveBandit {
	var moves []MoveBandit
	for _, t := range b.Terrains {
		if t == b.Bandit {
			continue
		}
		victims := b.Victims(t, player)
		if len(victims) == 0 {
			moves = append(moves, MoveBandit{Player: player, Terrain: t.ID, Victim: NoPlayer})
			continue
		}
		for _, v := range victims {
			moves = append(moves, MoveBandit{Player: player, Terrain: t.ID, Victim: v})
		}
	}
	return moves
}

func filterLegal(b *Board, candidates []Action) []Action {
	legal := candidates[:0]
	for _, a := range candidates {
		if IsLegal(b, a) {
			legal = append(legal, a)
		}
	}
	return legal
}

// Discard picks count resources of player to throw, always from the largest
// pile, preferring the resources the player values least.
func Discard(b *Board, player, count int) Bundle {
	h := &b.Hands[player]
	left := h.Resources
	var cards Bundle
	for ; count > 0; count-- {
		pick := NoResource
		for _, r := range Resources {
			if left[r] == 0 {
				continue
			}
			if pick == NoResource || left[r] > left[pick] ||
				(left[r] == left[pick] && h.ResourceValue[r] < h.ResourceValue[pick]) {
				pick = r
			}
		}
		if pick == NoResource {
			break
		}
		left[pick]--
		cards[pick]++
	}
	return cards
}
