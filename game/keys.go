package game

// Keys returns the comparison keys of a against the current (pre-action) state:
// name, points and player name, then the action-specific values. The keys are
// only compared, never interpreted.
func Keys(b *Board, a Action) []any {
	p := a.Actor()
	h := &b.Hands[p]
	keys := []any{a.Kind().String(), h.Points, h.Name}

	switch a := a.(type) {
	case UseKnight:
		keys = append(keys, banditKeys(b, p, a.Terrain)...)
	case MoveBandit:
		keys = append(keys, banditKeys(b, p, a.Terrain)...)
	case UseMonopoly:
		take := 0
		for i := range b.Hands {
			if i != p {
				take += b.Hands[i].Resources[a.Resource]
			}
		}
		keys = append(keys, take)
	case BuildSettlement:
		keys = append(keys, crossroadKeys(b.Crossroad(a.At))...)
	case BuildFirstSettlement:
		keys = append(keys, crossroadKeys(b.Crossroad(a.At))...)
	case BuildSecondSettlement:
		keys = append(keys, crossroadKeys(b.Crossroad(a.At))...)
	case BuildCity:
		keys = append(keys, crossroadKeys(b.Crossroad(a.At))...)
	case Trade:
		keys = append(keys, a.Rate)
	}
	return keys
}

// banditKeys are the production the player wins back and the production the
// opponents lose by moving the bandit to terrain.
func banditKeys(b *Board, player, terrain int) []any {
	ownBefore, othersBefore := b.Bandit.banditValue(player)
	ownAfter, othersAfter := b.Terrains[terrain].banditValue(player)
	return []any{ownBefore - ownAfter, othersAfter - othersBefore}
}

func crossroadKeys(cr *Crossroad) []any {
	keys := []any{cr.ValueSum()}
	for _, r := range Resources {
		keys = append(keys, cr.Value[r])
	}
	return keys
}
