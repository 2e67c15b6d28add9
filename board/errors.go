package board

import "errors"

var (
	ErrUnknownColumn    = errors.New("unknown board column")
	ErrIndexOutOfRange  = errors.New("index outside column bounds")
	ErrTaskNotInProject = errors.New("task does not belong to project")
)
