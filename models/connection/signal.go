package connection

const (
	CodeSessionID uint8 = iota

	// Requests sent by the client, answered with the same code
	CodeMoveShip
	CodeRotateShip
	CodeArrangeShips
	CodeValidateShips
	CodeLockBattlefield
	CodeUnlockBattlefield
	CodeMarkField
	CodeResetBattlefield
	CodeBattlefieldState

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent

	// Pushed to the client whenever the battlefield emits an event
	CodeShipMoved
	CodeFieldHit
	CodeFieldMissed
	CodeLockChanged
)

type Signal struct {
	Code uint8 `json:"code"`
}
