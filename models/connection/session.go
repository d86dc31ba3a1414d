package connection

import (
	"encoding/base64"
	"errors"
	"log"
	"net"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

// Session is one websocket client arranging its own battlefield.
// Every event the battlefield emits is pushed to the client as it
// happens, unless the session is muted.
type Session struct {
	id          string
	conn        *websocket.Conn
	battlefield *mb.Battlefield
	isMuted     bool
}

func NewSession(conn *websocket.Conn, battlefield *mb.Battlefield) *Session {
	s := &Session{
		id:          base64.RawURLEncoding.EncodeToString([]byte(uuid.NewString())),
		conn:        conn,
		battlefield: battlefield,
	}

	battlefield.Subscribe(s.forwardEvent)
	return s
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) Battlefield() *mb.Battlefield {
	return s.battlefield
}

// Quietly runs fn without pushing the events it triggers. Random
// arrangement moves ships many times before settling; the client
// only needs the final state.
func (s *Session) Quietly(fn func()) {
	s.isMuted = true
	defer func() { s.isMuted = false }()

	fn()
}

func (s *Session) forwardEvent(ev mb.Event) {
	if s.isMuted {
		return
	}

	var msg interface{}
	switch ev.Kind {
	case mb.EventShipMoved:
		m := NewMessage[RespShip](CodeShipMoved)
		m.AddPayload(NewRespShip(ev.Ship))
		msg = m

	case mb.EventHit:
		m := NewMessage[RespMarkField](CodeFieldHit)
		m.AddPayload(RespMarkField{X: ev.Position.X, Y: ev.Position.Y, Marker: mb.MarkerHit.String()})
		msg = m

	case mb.EventMissed:
		m := NewMessage[RespMarkField](CodeFieldMissed)
		m.AddPayload(RespMarkField{X: ev.Position.X, Y: ev.Position.Y, Marker: mb.MarkerMissed.String()})
		msg = m

	case mb.EventLockChanged:
		m := NewMessage[RespLock](CodeLockChanged)
		m.AddPayload(RespLock{IsLocked: ev.IsLocked})
		msg = m

	default:
		return
	}

	if err := s.WriteJSON(msg); err != nil {
		log.Printf("failed to forward %s event to ws [%s]: %s\n", ev.Kind, s.conn.RemoteAddr().String(), err)
	}
}

func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Println("close error:", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		log.Println("critical error:", err)
		return ConnLoopBreak
	}

	/*
		Most likely the client is not one of ours (binary frames,
		non UTF-8 text, oversized payloads). Break instead of spending
		cycles on payloads we cannot read.
	*/
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		log.Println("non-critical error:", err)
		return ConnLoopBreak
	}

	log.Println("unexpected error:", err)
	return ConnLoopBreak
}

// Writes msg as JSON to the session connection. gorilla keeps the
// first write error and returns it on every later write, so there
// is nothing to retry.
func (s *Session) WriteJSON(msg interface{}) error {
	err := s.conn.WriteJSON(msg)
	if err == nil {
		return nil
	}

	code := s.onConnErr(err)
	log.Printf("writing json failed to ws [%s]: %s\n", s.conn.RemoteAddr().String(), err)
	return NewConnErr(code).AddDesc("write: " + err.Error())
}

// Reads the next message. A failed read leaves the connection
// unusable, so the first error ends the session.
func (s *Session) ReadFromConn() ([]byte, error) {
	_, payload, err := s.conn.ReadMessage()
	if err == nil {
		return payload, nil
	}

	code := s.onConnErr(err)
	log.Printf("break ws conn loop [%s] due to: %s\n", s.conn.RemoteAddr().String(), err)
	return nil, NewConnErr(code).AddDesc("read: " + err.Error())
}
