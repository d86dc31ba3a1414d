package connection

import (
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespShip struct {
	ID          string           `json:"id"`
	Length      int              `json:"length"`
	HasPosition bool             `json:"has_position"`
	IsRotated   bool             `json:"is_rotated"`
	IsCollision bool             `json:"is_collision"`
	Coordinates []mb.Coordinates `json:"coordinates,omitempty"`
}

func NewRespShip(ship *mb.Ship) RespShip {
	return RespShip{
		ID:          ship.ID(),
		Length:      ship.Length(),
		HasPosition: ship.HasPosition(),
		IsRotated:   ship.IsRotated(),
		IsCollision: ship.IsCollision(),
		Coordinates: ship.Coordinates(),
	}
}

type RespField struct {
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Marker  string   `json:"marker"`
	ShipIDs []string `json:"ship_ids,omitempty"`
}

func NewRespField(field *mb.Field) RespField {
	position := field.Position()
	resp := RespField{
		X:      position.X,
		Y:      position.Y,
		Marker: field.Marker().String(),
	}

	for _, ship := range field.Ships() {
		resp.ShipIDs = append(resp.ShipIDs, ship.ID())
	}
	return resp
}

type RespBattlefield struct {
	Size     int         `json:"size"`
	IsLocked bool        `json:"is_locked"`
	Ships    []RespShip  `json:"ships"`
	Fields   []RespField `json:"fields"`
}

func NewRespBattlefield(bf *mb.Battlefield) RespBattlefield {
	resp := RespBattlefield{
		Size:     bf.Size(),
		IsLocked: bf.IsLocked(),
		Ships:    make([]RespShip, 0, bf.ShipsCollection().Len()),
		Fields:   make([]RespField, 0, bf.Len()),
	}

	for ship := range bf.ShipsCollection().All() {
		resp.Ships = append(resp.Ships, NewRespShip(ship))
	}
	for field := range bf.Fields() {
		resp.Fields = append(resp.Fields, NewRespField(field))
	}
	return resp
}

type RespValidateShips struct {
	IsValid           bool     `json:"is_valid"`
	CollidingShipIDs  []string `json:"colliding_ship_ids,omitempty"`
	OutOfBoundShipIDs []string `json:"out_of_bound_ship_ids,omitempty"`
}

type RespMarkField struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Marker string `json:"marker"`
}

type RespLock struct {
	IsLocked bool `json:"is_locked"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
