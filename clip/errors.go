package clip

import "errors"

var (
	// ErrTooManyClips indicates the clip table is full
	ErrTooManyClips = errors.New("clip table is full")

	// ErrUnknownFormat indicates no decoder is registered for the
	// file's extension
	ErrUnknownFormat = errors.New("no decoder registered for file extension")
)
