package render

import "catan/game"

// Nop draws nothing. It is the renderer used when no observer is configured.
type Nop struct{}

var _ game.Renderer = Nop{}

func (Nop) Action(string) {}
func (Nop) Settlement(int, game.Location) {}
func (Nop) City(int, game.Location) {}
func (Nop) Road(int, game.Location, game.Location) {}
func (Nop) Resources(int, game.Bundle) {}
func (Nop) Highlight(game.Location) {}
