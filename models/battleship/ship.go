package battleship

import "github.com/google/uuid"

// Ship position and orientation are only changed through the
// Battlefield that owns it so the field index stays in sync.
//
// A horizontal ship (isRotated == false) extends in +x from its
// head, a vertical one in +y.
type Ship struct {
	id          string
	length      int
	position    Coordinates
	hasPosition bool
	isRotated   bool
	isCollision bool
}

func NewShip(length int) *Ship {
	return &Ship{
		id:     uuid.NewString(),
		length: length,
	}
}

func (sh *Ship) ID() string {
	return sh.id
}

func (sh *Ship) Length() int {
	return sh.length
}

// Position returns the head of the ship. ok is false while the
// ship is unplaced.
func (sh *Ship) Position() (position Coordinates, ok bool) {
	return sh.position, sh.hasPosition
}

func (sh *Ship) HasPosition() bool {
	return sh.hasPosition
}

func (sh *Ship) IsRotated() bool {
	return sh.isRotated
}

func (sh *Ship) IsCollision() bool {
	return sh.isCollision
}

// Coordinates returns the cells the ship occupies, head first.
// It is nil for an unplaced ship.
func (sh *Ship) Coordinates() []Coordinates {
	if !sh.hasPosition {
		return nil
	}

	coords := make([]Coordinates, sh.length)
	for i := 0; i < sh.length; i++ {
		if sh.isRotated {
			coords[i] = NewCoordinates(sh.position.X, sh.position.Y+i)
		} else {
			coords[i] = NewCoordinates(sh.position.X+i, sh.position.Y)
		}
	}
	return coords
}

func (sh *Ship) Tail() (tail Coordinates, ok bool) {
	coords := sh.Coordinates()
	if len(coords) == 0 {
		return Coordinates{}, false
	}
	return coords[len(coords)-1], true
}

func (sh *Ship) rotate() {
	sh.isRotated = !sh.isRotated
}

func (sh *Ship) reset() {
	sh.position = Coordinates{}
	sh.hasPosition = false
	sh.isRotated = false
	sh.isCollision = false
}
