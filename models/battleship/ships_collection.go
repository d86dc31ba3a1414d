package battleship

import "iter"

// ShipsCollection keeps ships in insertion order, unique by id.
type ShipsCollection struct {
	ships []*Ship
	index map[string]*Ship
	added emitter[*Ship]
}

func NewShipsCollection() *ShipsCollection {
	return &ShipsCollection{
		ships: make([]*Ship, 0, 10),
		index: make(map[string]*Ship, 10),
	}
}

// CreateShipsFromSchema creates unplaced ships grouped by length,
// shortest first.
func CreateShipsFromSchema(schema Schema) []*Ship {
	ships := make([]*Ship, 0, schema.Ships())

	for _, length := range schema.Lengths() {
		for i := 0; i < schema[length]; i++ {
			ships = append(ships, NewShip(length))
		}
	}
	return ships
}

// OnAdd registers fn to be called for every ship that Add accepts.
func (sc *ShipsCollection) OnAdd(fn func(*Ship)) {
	sc.added.subscribe(fn)
}

// Add appends ships that are not already in the collection and
// emits an add event for each of them.
func (sc *ShipsCollection) Add(ships ...*Ship) {
	for _, ship := range ships {
		if ship == nil {
			continue
		}
		if _, prs := sc.index[ship.id]; prs {
			continue
		}

		sc.ships = append(sc.ships, ship)
		sc.index[ship.id] = ship
		sc.added.emit(ship)
	}
}

func (sc *ShipsCollection) Get(id string) (*Ship, bool) {
	ship, prs := sc.index[id]
	return ship, prs
}

func (sc *ShipsCollection) Len() int {
	return len(sc.ships)
}

func (sc *ShipsCollection) All() iter.Seq[*Ship] {
	return func(yield func(*Ship) bool) {
		for _, ship := range sc.ships {
			if !yield(ship) {
				return
			}
		}
	}
}

// Reversed walks the collection from the last added ship to the
// first. With a schema-built fleet that puts the longest ships first.
func (sc *ShipsCollection) Reversed() iter.Seq[*Ship] {
	return func(yield func(*Ship) bool) {
		for i := len(sc.ships) - 1; i >= 0; i-- {
			if !yield(sc.ships[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the ships in insertion order.
func (sc *ShipsCollection) Slice() []*Ship {
	ships := make([]*Ship, len(sc.ships))
	copy(ships, sc.ships)
	return ships
}
