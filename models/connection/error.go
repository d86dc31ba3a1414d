package connection

import "fmt"

// Codes carried by ConnErr. Both end the session loop; ConnLoopRetry
// tells the client the failure was transient (timeout, server load)
// and reconnecting is worth it.
const (
	ConnLoopBreak uint8 = iota
	ConnLoopRetry
)

// ConnErr is returned by Session reads and writes, code says why the
// connection went away.
type ConnErr struct {
	code uint8
	desc string
}

func NewConnErr(code uint8) ConnErr {
	return ConnErr{code: code}
}

func (c ConnErr) AddDesc(desc string) ConnErr {
	c.desc = desc
	return c
}

func (c ConnErr) Error() string {
	return fmt.Sprintf("connection error - code: %d\tdesc: %s", c.code, c.desc)
}

func (c ConnErr) Code() uint8 {
	return c.code
}

func (c ConnErr) IsTransient() bool {
	return c.code == ConnLoopRetry
}
