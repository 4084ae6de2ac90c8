package game

import "fmt"

// Layout assigns resources and roll numbers to the terrains (row by row) and
// port kinds to the coastal port positions (clockwise from the top left).
type Layout struct {
	Resources []Resource
	Numbers   []int
	Ports     []Resource
}

var terrainCounts = Bundle{Wood: 4, Clay: 3, Sheep: 4, Wheat: 4, Iron: 3}

var defaultPorts = []Resource{Desert, Sheep, Desert, Desert, Clay, Wood, Desert, Wheat, Iron}

// DefaultLayout returns the fixed beginner board.
func DefaultLayout() Layout {
	return Layout{
		Resources: []Resource{
			Iron, Sheep, Wood,
			Wheat, Clay, Sheep, Clay,
			Wheat, Wood, Desert, Wood, Iron,
			Wood, Iron, Wheat, Sheep,
			Clay, Wheat, Sheep,
		},
		Numbers: []int{
			10, 2, 9,
			12, 6, 4, 10,
			9, 11, 7, 3, 8,
			8, 3, 4, 5,
			5, 6, 11,
		},
		Ports: append([]Resource(nil), defaultPorts...),
	}
}

// RandomLayout shuffles the standard terrain set, roll numbers and ports.
func RandomLayout(rng Rand) Layout {
	resources := []Resource{Desert}
	for r, n := range terrainCounts {
		for i := 0; i < n; i++ {
			resources = append(resources, Resource(r))
		}
	}
	shuffle(rng, resources)

	numbers := []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}
	shuffle(rng, numbers)

	layout := Layout{Ports: append([]Resource(nil), defaultPorts...)}
	shuffle(rng, layout.Ports)
	layout.Resources = resources
	next := 0
	for _, r := range resources {
		if r == Desert {
			layout.Numbers = append(layout.Numbers, 7)
			continue
		}
		layout.Numbers = append(layout.Numbers, numbers[next])
		next++
	}
	return layout
}

// Validate checks the layout fits the standard board.
func (l Layout) Validate() error {
	if len(l.Resources) != NumTerrains || len(l.Numbers) != NumTerrains {
		return fmt.Errorf("layout needs %d terrains, got %d resources and %d numbers", NumTerrains, len(l.Resources), len(l.Numbers))
	}
	if len(l.Ports) != len(portEdges) {
		return fmt.Errorf("layout needs %d ports, got %d", len(portEdges), len(l.Ports))
	}
	deserts := 0
	for i, r := range l.Resources {
		if r == Desert {
			deserts++
			if l.Numbers[i] != 7 {
				return fmt.Errorf("desert terrain %d must carry 7, got %d", i, l.Numbers[i])
			}
			continue
		}
		if l.Numbers[i] < 2 || l.Numbers[i] > 12 || l.Numbers[i] == 7 {
			return fmt.Errorf("terrain %d has invalid number %d", i, l.Numbers[i])
		}
	}
	if deserts != 1 {
		return fmt.Errorf("layout needs exactly one desert, got %d", deserts)
	}
	return nil
}
