// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrBadChannelCount = errors.New("channel count must be at least 1")
	ErrRaggedBuffer    = errors.New("sample count must be multiple of channels")
	ErrBadSampleRate   = errors.New("sample rate must be positive")
)
