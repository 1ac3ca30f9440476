package command

import "github.com/code19m/errx"

var (
	// ErrNilAction is returned when a command is constructed without an action.
	ErrNilAction = errx.New("[command]: action is required")
)
