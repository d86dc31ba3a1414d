package api

import (
	"encoding/json"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

type RequestHandler interface {
	HandleMoveShip() mc.Message[mc.RespShip]
	HandleRotateShip() mc.Message[mc.RespShip]
	HandleArrangeShips() mc.Message[mc.RespBattlefield]
	HandleValidateShips() mc.Message[mc.RespValidateShips]
	HandleLock(isLocked bool) mc.Message[mc.RespLock]
	HandleMarkField() mc.Message[mc.RespMarkField]
	HandleResetBattlefield() mc.Message[mc.RespBattlefield]
	HandleBattlefieldState() mc.Message[mc.RespBattlefield]
}

// Every incoming valid request will have this structure. Errors
// are reported back in the response, the session keeps going.
type Request struct {
	session *mc.Session
	payload []byte
}

var _ RequestHandler = Request{}

func NewRequest(session *mc.Session, payload []byte) Request {
	return Request{
		session: session,
		payload: payload,
	}
}

func (r Request) battlefield() *mb.Battlefield {
	return r.session.Battlefield()
}

func (r Request) findPlacementShip(shipId string) (*mb.Ship, error) {
	bf := r.battlefield()
	if bf.IsLocked() {
		return nil, cerr.ErrBattlefieldLocked()
	}

	ship, prs := bf.FindShip(shipId)
	if !prs {
		return nil, cerr.ErrShipNotExist(shipId)
	}
	return ship, nil
}

func (r Request) HandleMoveShip() mc.Message[mc.RespShip] {
	resp := mc.NewMessage[mc.RespShip](mc.CodeMoveShip)

	var req mc.Message[mc.ReqMoveShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrInvalidPayload)
		return resp
	}

	ship, err := r.findPlacementShip(req.Payload.ShipID)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlacement)
		return resp
	}

	position := mb.NewCoordinates(req.Payload.X, req.Payload.Y)
	if req.Payload.IsRotated == nil {
		r.battlefield().MoveShip(ship, position)
	} else {
		r.battlefield().MoveShipRotated(ship, position, *req.Payload.IsRotated)
	}

	resp.AddPayload(mc.NewRespShip(ship))
	return resp
}

func (r Request) HandleRotateShip() mc.Message[mc.RespShip] {
	resp := mc.NewMessage[mc.RespShip](mc.CodeRotateShip)

	var req mc.Message[mc.ReqRotateShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrInvalidPayload)
		return resp
	}

	ship, err := r.findPlacementShip(req.Payload.ShipID)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlacement)
		return resp
	}

	r.battlefield().RotateShip(ship)
	resp.AddPayload(mc.NewRespShip(ship))
	return resp
}

// The random strategy never gives up, so a fleet that obviously
// cannot fit is refused here instead of hanging the session.
func (r Request) HandleArrangeShips() mc.Message[mc.RespBattlefield] {
	resp := mc.NewMessage[mc.RespBattlefield](mc.CodeArrangeShips)
	bf := r.battlefield()

	if bf.IsLocked() {
		resp.AddError(cerr.ErrBattlefieldLocked().Error(), cerr.ConstErrArrange)
		return resp
	}

	if err := bf.ShipsSchema().FitsGrid(bf.Size()); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrArrange)
		return resp
	}

	r.session.Quietly(bf.ArrangeShips)
	resp.AddPayload(mc.NewRespBattlefield(bf))
	return resp
}

func (r Request) HandleValidateShips() mc.Message[mc.RespValidateShips] {
	resp := mc.NewMessage[mc.RespValidateShips](mc.CodeValidateShips)
	bf := r.battlefield()

	payload := mc.RespValidateShips{IsValid: bf.ValidateFleet()}
	for ship := range bf.ShipsCollection().All() {
		if ship.IsCollision() {
			payload.CollidingShipIDs = append(payload.CollidingShipIDs, ship.ID())
		}
		if !bf.IsShipInBound(ship) {
			payload.OutOfBoundShipIDs = append(payload.OutOfBoundShipIDs, ship.ID())
		}
	}

	resp.AddPayload(payload)
	return resp
}

func (r Request) HandleLock(isLocked bool) mc.Message[mc.RespLock] {
	code := mc.CodeUnlockBattlefield
	if isLocked {
		code = mc.CodeLockBattlefield
	}
	resp := mc.NewMessage[mc.RespLock](code)

	if isLocked {
		r.battlefield().Lock()
	} else {
		r.battlefield().Unlock()
	}

	resp.AddPayload(mc.RespLock{IsLocked: r.battlefield().IsLocked()})
	return resp
}

func (r Request) HandleMarkField() mc.Message[mc.RespMarkField] {
	resp := mc.NewMessage[mc.RespMarkField](mc.CodeMarkField)

	var req mc.Message[mc.ReqMarkField]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrInvalidPayload)
		return resp
	}

	marker, err := mb.ParseMarker(req.Payload.Marker)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrMark)
		return resp
	}

	position := mb.NewCoordinates(req.Payload.X, req.Payload.Y)
	r.battlefield().MarkAs(position, marker)

	resp.AddPayload(mc.RespMarkField{X: position.X, Y: position.Y, Marker: marker.String()})
	return resp
}

func (r Request) HandleResetBattlefield() mc.Message[mc.RespBattlefield] {
	resp := mc.NewMessage[mc.RespBattlefield](mc.CodeResetBattlefield)

	r.battlefield().Reset()
	resp.AddPayload(mc.NewRespBattlefield(r.battlefield()))
	return resp
}

func (r Request) HandleBattlefieldState() mc.Message[mc.RespBattlefield] {
	resp := mc.NewMessage[mc.RespBattlefield](mc.CodeBattlefieldState)
	resp.AddPayload(mc.NewRespBattlefield(r.battlefield()))
	return resp
}
