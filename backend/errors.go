package backend

import "errors"

var (
	// ErrEffectsUnsupported indicates the device has no environment
	// effect capability
	ErrEffectsUnsupported = errors.New("environment effects unsupported")

	// ErrBadClip indicates a clip the device cannot upload
	ErrBadClip = errors.New("clip has no playable PCM payload")

	// ErrClosed indicates a call on a closed backend
	ErrClosed = errors.New("backend is closed")
)
