package battleship

import (
	"strconv"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerMissed
	MarkerHit
)

func (m Marker) String() string {
	switch m {
	case MarkerMissed:
		return "missed"
	case MarkerHit:
		return "hit"
	default:
		return "none"
	}
}

func ParseMarker(kind string) (Marker, error) {
	switch kind {
	case "missed":
		return MarkerMissed, nil
	case "hit":
		return MarkerHit, nil
	default:
		return MarkerNone, cerr.ErrInvalidMarker(kind)
	}
}

// Field is a single grid cell. It trusts the coordinates it was
// created with; bounds are the battlefield's business.
type Field struct {
	position Coordinates
	ships    []*Ship
	marker   Marker
}

func newField(position Coordinates) *Field {
	return &Field{
		position: position,
		ships:    make([]*Ship, 0, 1),
		marker:   MarkerNone,
	}
}

// ID is unique per coordinate, e.g. "3:7".
func (f *Field) ID() string {
	return strconv.Itoa(f.position.X) + ":" + strconv.Itoa(f.position.Y)
}

func (f *Field) Position() Coordinates {
	return f.position
}

func (f *Field) Marker() Marker {
	return f.marker
}

func (f *Field) IsMarked() bool {
	return f.marker != MarkerNone
}

// Returns a copy of the occupants in the order they were added.
func (f *Field) Ships() []*Ship {
	ships := make([]*Ship, len(f.ships))
	copy(ships, f.ships)
	return ships
}

func (f *Field) Len() int {
	return len(f.ships)
}

func (f *Field) AddShip(ship *Ship) {
	if f.GetShip(ship.id) != nil {
		return
	}
	f.ships = append(f.ships, ship)
}

func (f *Field) RemoveShip(id string) {
	for i, ship := range f.ships {
		if ship.id == id {
			f.ships = append(f.ships[:i], f.ships[i+1:]...)
			return
		}
	}
}

func (f *Field) GetShip(id string) *Ship {
	for _, ship := range f.ships {
		if ship.id == id {
			return ship
		}
	}
	return nil
}

// Re-marking overwrites; the last write wins.
func (f *Field) MarkAsMissed() {
	f.marker = MarkerMissed
}

func (f *Field) MarkAsHit() {
	f.marker = MarkerHit
}
