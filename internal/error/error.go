package error

import "fmt"

const (
	ConstErrInvalidPayload = "invalid request payload"
	ConstErrPlacement      = "ship placement failed"
	ConstErrMark           = "mark operation failed"
	ConstErrArrange        = "arranging ships failed"
)

func ErrShipNotExist(shipId string) error {
	return fmt.Errorf("ship with this id does not exist, id: %s", shipId)
}

func ErrBattlefieldLocked() error {
	return fmt.Errorf("battlefield is locked; placement is not allowed")
}

func ErrInvalidMarker(kind string) error {
	return fmt.Errorf("marker must be either hit or missed, got: %q", kind)
}

func ErrInvalidSchemaEntry(entry string) error {
	return fmt.Errorf("schema entry must be of the form length:count, got: %q", entry)
}

func ErrInvalidShipLength(length int) error {
	return fmt.Errorf("ship length must be positive\tlength: %d", length)
}

func ErrInvalidShipCount(length, count int) error {
	return fmt.Errorf("ship count must be positive\tlength: %d\tcount: %d", length, count)
}

func ErrInvalidGridSize(size int) error {
	return fmt.Errorf("grid size must be positive\tsize: %d", size)
}

func ErrInfeasibleSchema(cells, size int) error {
	return fmt.Errorf("fleet needs more cells than the grid has\tcells: %d\tgrid size: %d", cells, size)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %q", stage)
}

func ErrShipTooLong(length, size int) error {
	return fmt.Errorf("ship does not fit on the grid\tlength: %d\tgrid size: %d", length, size)
}
