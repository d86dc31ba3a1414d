package connection

// NoPayload is used for requests and responses that only carry a code.
type NoPayload bool

// Message is the envelope of every frame on the battlefield session,
// in both directions. Error is only set on responses whose request
// could not be applied; the session stays open.
type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

// AddError attaches the failure; errorDetails is the cause and
// message the operation that failed (see cerr.ConstErr*).
func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}
