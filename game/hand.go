package game

import (
	"fmt"

	"catan/meta"
)

// Hand is a player's private inventory and derived statistics. It holds only
// values, so copying a Hand snapshots it completely.
type Hand struct {
	Index  int
	Name   string
	Points int

	Resources Bundle
	Ready     [NumDevCards]int // cards that may be played this turn
	Fresh     [NumDevCards]int // cards bought since the owner's turn started

	RoadPieces       int
	SettlementPieces int
	CityPieces       int

	Ports       [NumResources + 1]bool // indexed by Resource, Desert is the generic port
	Army        int                    // knights played
	LongestRoad int                    // longest road chain built so far

	Production    Bundle // dice combinations per resource over the hand's buildings
	ProductionAll float64
	ResourceValue [NumResources]float64
}

// NewHand returns an empty hand with the full supply of pieces.
func NewHand(index int) Hand {
	h := Hand{
		Index:            index,
		Name:             fmt.Sprintf("Player%d", index+1),
		RoadPieces:       meta.RoadPieces,
		SettlementPieces: meta.SettlementPieces,
		CityPieces:       meta.CityPieces,
	}
	h.UpdateResourceValues()
	return h
}

// CanPay reports whether the hand holds at least price.
func (h *Hand) CanPay(price Bundle) bool {
	return h.Resources.Covers(price)
}

// Pay debits price. It refuses, without mutation, a price the hand cannot cover.
func (h *Hand) Pay(price Bundle) bool {
	if !h.CanPay(price) {
		return false
	}
	h.Resources = h.Resources.Sub(price)
	return true
}

func (h *Hand) Receive(b Bundle) {
	h.Resources = h.Resources.Add(b)
}

func (h *Hand) ResourceCount() int {
	return h.Resources.Total()
}

// CardCount counts development cards in hand, ready or not.
func (h *Hand) CardCount() int {
	count := 0
	for i := 0; i < NumDevCards; i++ {
		count += h.Ready[i] + h.Fresh[i]
	}
	return count
}

// TradeRate returns the best bank exchange rate available for src.
func (h *Hand) TradeRate(src Resource) int {
	if src.Producible() && h.Ports[src] {
		return 2
	}
	if h.Ports[Desert] {
		return 3
	}
	return 4
}

// wakeCards makes the cards bought during the previous turn playable.
func (h *Hand) wakeCards() {
	for i := range h.Fresh {
		h.Ready[i] += h.Fresh[i]
		h.Fresh[i] = 0
	}
}

// UpdateResourceValues weighs each resource by how scarce it is in the hand's production.
func (h *Hand) UpdateResourceValues() {
	most := 0
	for _, n := range h.Production {
		most = max(most, n)
	}
	for _, r := range Resources {
		h.ResourceValue[r] = 1 + float64(most-h.Production[r])/36
	}
}

// DiscardCount returns how many resources the hand must throw away on a 7.
func (h *Hand) DiscardCount() int {
	if n := h.ResourceCount(); n > meta.DiscardLimit {
		return n / 2
	}
	return 0
}
