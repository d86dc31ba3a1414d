package battleship

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// The helpers below never check bounds. Callers that probe
// neighbours (e.g. cells around a sunken ship) validate the
// result themselves.

func PositionAtTheTopOf(c Coordinates) Coordinates {
	return Coordinates{X: c.X, Y: c.Y - 1}
}

func PositionAtTheRightOf(c Coordinates) Coordinates {
	return Coordinates{X: c.X + 1, Y: c.Y}
}

func PositionAtTheBottomOf(c Coordinates) Coordinates {
	return Coordinates{X: c.X, Y: c.Y + 1}
}

func PositionAtTheLeftOf(c Coordinates) Coordinates {
	return Coordinates{X: c.X - 1, Y: c.Y}
}
