package battleship

import (
	"iter"
	"maps"
)

// Battlefield owns a size x size grid, the fleet placed on it and
// the sparse index of fields that are either occupied or marked.
//
// Overlapping ships are allowed while placing; overlap is reported
// by ValidateShipCollision, not prevented by MoveShip.
type Battlefield struct {
	size            int
	shipsSchema     Schema
	isLocked        bool
	shipsCollection *ShipsCollection
	fields          map[Coordinates]*Field
	strategy        PlacementStrategy
	events          emitter[Event]
}

func NewBattlefield(size int, shipsSchema Schema) *Battlefield {
	bf := &Battlefield{
		size:            size,
		shipsSchema:     shipsSchema,
		shipsCollection: NewShipsCollection(),
		fields:          make(map[Coordinates]*Field, size*size),
		strategy:        NewRandomPlacementStrategy(nil),
	}

	bf.shipsCollection.OnAdd(bf.onShipAdded)
	return bf
}

// CreateWithShips builds a battlefield whose collection holds an
// unplaced fleet made from shipsSchema.
func CreateWithShips(size int, shipsSchema Schema) *Battlefield {
	bf := NewBattlefield(size, shipsSchema)
	bf.shipsCollection.Add(CreateShipsFromSchema(shipsSchema)...)
	return bf
}

// A ship that joins the collection already carrying a position is
// put on the grid right away, locked or not, so the index always
// covers every placed ship.
func (bf *Battlefield) onShipAdded(ship *Ship) {
	if !ship.hasPosition {
		return
	}
	bf.placeShip(ship, ship.position, ship.isRotated)
}

func (bf *Battlefield) Size() int {
	return bf.size
}

func (bf *Battlefield) ShipsSchema() Schema {
	return bf.shipsSchema
}

func (bf *Battlefield) ShipsCollection() *ShipsCollection {
	return bf.shipsCollection
}

func (bf *Battlefield) FindShip(id string) (*Ship, bool) {
	return bf.shipsCollection.Get(id)
}

// Subscribe registers fn for every event the battlefield emits.
// Listeners run synchronously inside the call that triggered them.
func (bf *Battlefield) Subscribe(fn func(Event)) {
	bf.events.subscribe(fn)
}

func (bf *Battlefield) SetPlacementStrategy(strategy PlacementStrategy) {
	if strategy == nil {
		return
	}
	bf.strategy = strategy
}

func (bf *Battlefield) IsLocked() bool {
	return bf.isLocked
}

func (bf *Battlefield) Lock() {
	bf.setLocked(true)
}

func (bf *Battlefield) Unlock() {
	bf.setLocked(false)
}

func (bf *Battlefield) setLocked(isLocked bool) {
	if bf.isLocked == isLocked {
		return
	}
	bf.isLocked = isLocked
	bf.events.emit(Event{Kind: EventLockChanged, IsLocked: isLocked})
}

func (bf *Battlefield) GetField(position Coordinates) (*Field, bool) {
	field, prs := bf.fields[position]
	return field, prs
}

func (bf *Battlefield) getFieldOrCreate(position Coordinates) *Field {
	field, prs := bf.fields[position]
	if !prs {
		field = newField(position)
		bf.fields[position] = field
	}
	return field
}

// Fields iterates the index in no particular order.
func (bf *Battlefield) Fields() iter.Seq[*Field] {
	return maps.Values(bf.fields)
}

// Len is the number of fields currently in the index.
func (bf *Battlefield) Len() int {
	return len(bf.fields)
}

// MarkAs applies marker to the field at position. MarkerNone is
// ignored.
func (bf *Battlefield) MarkAs(position Coordinates, marker Marker) {
	switch marker {
	case MarkerMissed:
		bf.MarkAsMissed(position)
	case MarkerHit:
		bf.MarkAsHit(position)
	}
}

func (bf *Battlefield) MarkAsMissed(position Coordinates) {
	bf.getFieldOrCreate(position).MarkAsMissed()
	bf.events.emit(Event{Kind: EventMissed, Position: position})
}

func (bf *Battlefield) MarkAsHit(position Coordinates) {
	bf.getFieldOrCreate(position).MarkAsHit()
	bf.events.emit(Event{Kind: EventHit, Position: position})
}

// MoveShip places ship with its head at position, keeping its
// current orientation.
func (bf *Battlefield) MoveShip(ship *Ship, position Coordinates) {
	bf.moveShip(ship, position, ship.isRotated)
}

// MoveShipRotated places ship with its head at position using the
// given orientation.
func (bf *Battlefield) MoveShipRotated(ship *Ship, position Coordinates, isRotated bool) {
	bf.moveShip(ship, position, isRotated)
}

func (bf *Battlefield) moveShip(ship *Ship, position Coordinates, isRotated bool) {
	if bf.isLocked {
		return
	}
	bf.placeShip(ship, position, isRotated)
}

// Only the orientation axis is clamped to [0, size-length]; the
// other axis goes through as is and is caught by IsShipInBound.
func (bf *Battlefield) placeShip(ship *Ship, position Coordinates, isRotated bool) {
	maxHead := bf.size - ship.length
	if isRotated {
		position.Y = clamp(position.Y, maxHead)
	} else {
		position.X = clamp(position.X, maxHead)
	}

	for _, c := range ship.Coordinates() {
		field, prs := bf.fields[c]
		if !prs {
			continue
		}
		field.RemoveShip(ship.id)

		// Markers outlive occupancy, bare fields do not.
		if field.Len() == 0 && !field.IsMarked() {
			delete(bf.fields, c)
		}
	}

	ship.isRotated = isRotated
	ship.position = position
	ship.hasPosition = true

	for _, c := range ship.Coordinates() {
		bf.getFieldOrCreate(c).AddShip(ship)
	}

	bf.events.emit(Event{Kind: EventShipMoved, Ship: ship})
}

func clamp(v, upper int) int {
	if v > upper {
		v = upper
	}
	if v < 0 {
		v = 0
	}
	return v
}

// RotateShip flips the orientation of ship around its head. An
// unplaced ship only has its orientation flipped.
func (bf *Battlefield) RotateShip(ship *Ship) {
	if bf.isLocked {
		return
	}
	if !ship.hasPosition {
		ship.rotate()
		return
	}
	bf.moveShip(ship, ship.position, !ship.isRotated)
}

func (bf *Battlefield) IsShipInBound(ship *Ship) bool {
	head, ok := ship.Position()
	if !ok {
		return false
	}
	tail, _ := ship.Tail()

	return bf.isInBound(head) && bf.isInBound(tail)
}

func (bf *Battlefield) isInBound(c Coordinates) bool {
	return c.X >= 0 && c.X < bf.size && c.Y >= 0 && c.Y < bf.size
}

// ValidateShipCollision flags every ship sharing a field with ship,
// ship included. Flags are only ever raised here; ships that share
// nothing with ship keep whatever flag they had. It reports the
// resulting flag of ship.
func (bf *Battlefield) ValidateShipCollision(ship *Ship) bool {
	for _, c := range ship.Coordinates() {
		field, prs := bf.fields[c]
		if !prs || field.Len() < 2 {
			continue
		}

		for _, occupant := range field.ships {
			occupant.isCollision = true
		}
	}

	return ship.isCollision
}

// ValidateShips reports whether every ship is in bound and not
// flagged as colliding.
func (bf *Battlefield) ValidateShips(ships []*Ship) bool {
	for _, ship := range ships {
		if !bf.IsShipInBound(ship) || ship.isCollision {
			return false
		}
	}
	return true
}

// ValidateFleet recomputes the collision flag of every ship in the
// collection from the current grid and validates the whole fleet.
func (bf *Battlefield) ValidateFleet() bool {
	for ship := range bf.shipsCollection.All() {
		ship.isCollision = false
	}
	for ship := range bf.shipsCollection.All() {
		bf.ValidateShipCollision(ship)
	}
	return bf.ValidateShips(bf.shipsCollection.Slice())
}

// Reset empties the field index, markers included, and returns
// every ship to the unplaced state.
func (bf *Battlefield) Reset() {
	clear(bf.fields)
	for ship := range bf.shipsCollection.All() {
		ship.reset()
	}
}

// ArrangeShips lets the placement strategy arrange the whole fleet.
func (bf *Battlefield) ArrangeShips() {
	bf.strategy.Place(bf)
}
