package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandPayment(t *testing.T) {
	t.Run("pay exactly the road price", func(t *testing.T) {
		h := NewHand(0)
		h.Resources = Bundle{Wood: 1, Clay: 1}

		require.True(t, h.CanPay(RoadPrice))
		require.True(t, h.Pay(RoadPrice))
		require.Equal(t, 0, h.Resources[Wood])
		require.Equal(t, 0, h.Resources[Clay])
		require.False(t, h.CanPay(RoadPrice), "an empty hand cannot pay again")
	})

	t.Run("refused payment leaves the hand untouched", func(t *testing.T) {
		h := NewHand(0)
		h.Resources = Bundle{Wood: 1}

		require.False(t, h.Pay(RoadPrice))
		require.Equal(t, Bundle{Wood: 1}, h.Resources)
	})
}

func TestHandDefaults(t *testing.T) {
	h := NewHand(2)
	require.Equal(t, "Player3", h.Name)
	require.Equal(t, 15, h.RoadPieces)
	require.Equal(t, 5, h.SettlementPieces)
	require.Equal(t, 4, h.CityPieces)
	require.Equal(t, 4, h.TradeRate(Wood))
	require.Equal(t, 0, h.CardCount())
}

func TestHandTradeRate(t *testing.T) {
	h := NewHand(0)
	h.Ports[Desert] = true
	require.Equal(t, 3, h.TradeRate(Wood), "generic port")
	h.Ports[Wood] = true
	require.Equal(t, 2, h.TradeRate(Wood), "wood port")
	require.Equal(t, 3, h.TradeRate(Iron))
}

func TestHandCards(t *testing.T) {
	h := NewHand(0)
	h.Fresh[Knight] = 2
	require.Equal(t, 2, h.CardCount())
	require.Equal(t, 0, h.Ready[Knight], "fresh cards are not playable")

	h.wakeCards()
	require.Equal(t, 2, h.Ready[Knight])
	require.Equal(t, 0, h.Fresh[Knight])
	require.Equal(t, 2, h.CardCount())
}

func TestHandDiscardCount(t *testing.T) {
	h := NewHand(0)
	h.Resources = Bundle{Wood: 7}
	require.Equal(t, 0, h.DiscardCount(), "seven cards are safe")
	h.Resources = Bundle{Wood: 4, Clay: 5}
	require.Equal(t, 4, h.DiscardCount())
}
