package utils

// Float32ToInt16 converts a normalized sample in [-1, 1] to a 16-bit PCM
// value. Out-of-range input is clamped.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM value to a normalized sample in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Uint8ToFloat32 converts an unsigned 8-bit PCM value (silence at 128) to a
// normalized sample.
func Uint8ToFloat32(v uint8) float32 {
	return (float32(v) - 128.0) / 128.0
}
