package battleship

type EventKind uint8

const (
	EventShipMoved EventKind = iota
	EventHit
	EventMissed
	EventLockChanged
)

func (k EventKind) String() string {
	switch k {
	case EventShipMoved:
		return "shipMoved"
	case EventHit:
		return "hit"
	case EventMissed:
		return "missed"
	case EventLockChanged:
		return "locked"
	default:
		return "unknown"
	}
}

// Event is what a Battlefield hands to its listeners. Only the
// fields relevant to Kind are set: Ship for EventShipMoved,
// Position for EventHit/EventMissed and IsLocked for EventLockChanged.
type Event struct {
	Kind     EventKind
	Ship     *Ship
	Position Coordinates
	IsLocked bool
}

// emitter calls every registered listener synchronously, in
// registration order, before emit returns.
type emitter[T any] struct {
	listeners []func(T)
}

func (e *emitter[T]) subscribe(fn func(T)) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, fn)
}

func (e *emitter[T]) emit(v T) {
	for _, fn := range e.listeners {
		fn(v)
	}
}
