package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// a whole battlefield state comfortably fits in this
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// RequestProcessor upgrades every request to a websocket session
// that owns a fresh battlefield of gridSize built from shipsSchema.
type RequestProcessor struct {
	gridSize    int
	shipsSchema mb.Schema
}

func NewRequestProcessor(gridSize int, shipsSchema mb.Schema) RequestProcessor {
	return RequestProcessor{
		gridSize:    gridSize,
		shipsSchema: shipsSchema,
	}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	session := mc.NewSession(conn, mb.CreateWithShips(rp.gridSize, rp.shipsSchema))
	rp.processSessionRequests(session)
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	defer func() {
		session.Conn().Close()
		log.Println("connection closed:", session.Conn().RemoteAddr().String())
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := session.WriteJSON(resp); err != nil {
		return
	}

sessionLoop:
	for {
		payload, err := session.ReadFromConn()
		if err != nil {
			// Retries are already spent at this point
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = session.WriteJSON(msg); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		req := NewRequest(session, payload)

		var respMsg interface{}
		switch signal.Code {
		case mc.CodeMoveShip:
			respMsg = req.HandleMoveShip()

		case mc.CodeRotateShip:
			respMsg = req.HandleRotateShip()

		case mc.CodeArrangeShips:
			respMsg = req.HandleArrangeShips()

		case mc.CodeValidateShips:
			respMsg = req.HandleValidateShips()

		case mc.CodeLockBattlefield:
			respMsg = req.HandleLock(true)

		case mc.CodeUnlockBattlefield:
			respMsg = req.HandleLock(false)

		case mc.CodeMarkField:
			respMsg = req.HandleMarkField()

		case mc.CodeResetBattlefield:
			respMsg = req.HandleResetBattlefield()

		case mc.CodeBattlefieldState:
			respMsg = req.HandleBattlefieldState()

		default:
			respMsg = mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
		}

		if err := session.WriteJSON(respMsg); err != nil {
			break sessionLoop
		}
	}
}
