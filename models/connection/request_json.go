package connection

type ReqMoveShip struct {
	ShipID string `json:"ship_id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`

	// Keeps the current orientation when omitted
	IsRotated *bool `json:"is_rotated,omitempty"`
}

type ReqRotateShip struct {
	ShipID string `json:"ship_id"`
}

type ReqMarkField struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Marker string `json:"marker"`
}
