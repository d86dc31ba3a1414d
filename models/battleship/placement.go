package battleship

import "math/rand/v2"

type PlacementStrategy interface {
	Place(bf *Battlefield)
}

// RandomInt returns a uniformly distributed integer in [lo, hi].
type RandomInt func(lo, hi int) int

func UniformRandomInt(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

// RandomPlacementStrategy re-rolls every ship until it lands on
// free cells, longest ships first. There is no retry cap, so a
// fleet that cannot fit on the grid never finishes.
type RandomPlacementStrategy struct {
	randomInt RandomInt
}

var _ PlacementStrategy = (*RandomPlacementStrategy)(nil)

// A nil randomInt falls back to UniformRandomInt.
func NewRandomPlacementStrategy(randomInt RandomInt) *RandomPlacementStrategy {
	if randomInt == nil {
		randomInt = UniformRandomInt
	}
	return &RandomPlacementStrategy{randomInt: randomInt}
}

func (rps *RandomPlacementStrategy) Place(bf *Battlefield) {
	if bf.isLocked {
		return
	}
	bf.Reset()

	for ship := range bf.shipsCollection.Reversed() {
		for {
			isRotated := rps.randomInt(0, 1) == 1
			x := rps.randomInt(0, bf.size-1)
			y := rps.randomInt(0, bf.size-1)

			// Only the draw under test decides, not a previous one.
			ship.isCollision = false
			bf.moveShip(ship, NewCoordinates(x, y), isRotated)

			if !bf.ValidateShipCollision(ship) && bf.IsShipInBound(ship) {
				break
			}
		}
	}

	// Ships placed earlier may have been flagged by draws that were
	// rejected afterwards; the final layout has no shared field.
	for ship := range bf.shipsCollection.All() {
		ship.isCollision = false
	}
}
