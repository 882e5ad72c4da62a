package quad

import (
	"os"
	"strconv"
)

// Level identifies the native 128-bit instruction set the host offers for
// this register model. The portable Go implementations are always the
// executed path; the level is informational, for logs and benchmarks.
type Level int

const (
	// LevelScalar indicates no native 128-bit SIMD was detected, or
	// detection was disabled.
	LevelScalar Level = iota

	// LevelSSE2 indicates the x86-64 SSE2 baseline.
	LevelSSE2

	// LevelAVX indicates AVX on top of the SSE2 baseline.
	LevelAVX

	// LevelNEON indicates ARM NEON.
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX:
		return "avx"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// backingLevel is the detected level for this host.
// Set by init() in dispatch_*.go files.
var backingLevel Level

// Backing returns the native instruction set detected for the 128-bit
// register model.
func Backing() Level {
	return backingLevel
}

// BackingName returns the human-readable name of the detected level.
func BackingName() string {
	return backingLevel.String()
}

// NoSimdEnv checks the QUAD_NO_SIMD environment variable. When set, the
// backing report stays at scalar regardless of CPU capabilities. Useful
// for comparing logs across hosts.
func NoSimdEnv() bool {
	val := os.Getenv("QUAD_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
