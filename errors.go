package soundstage

import "errors"

var (
	// ErrTooManyEmitters indicates the emitter table is full
	ErrTooManyEmitters = errors.New("emitter table is full")
)
