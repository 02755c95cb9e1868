// Package constants defines shared constants, environment variable names and
// timing values used throughout battleground.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read at startup.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	ThemeEnvVar        = "BATTLEGROUND_THEME"
	LanguageEnvVar     = "BATTLEGROUND_LANG"
	LogLevelEnvVar     = "BATTLEGROUND_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Reference resolution that scale factors are measured against.
const (
	ReferenceWidth  = 1920
	ReferenceHeight = 1080
)

// CompactMaxWidth is the widest viewport still laid out in compact mode.
const CompactMaxWidth = 768

// MinScale is the floor applied to both scale factors.
const MinScale = 0.5

// Default timing constants.
const (
	ResizeQuietPeriod  = 50 * time.Millisecond  // Debounce window for raw resize signals
	VideoFadeDuration  = 1 * time.Second        // Background video fade in/out
	TextSlideDuration  = 500 * time.Millisecond // Title group slide in/out
	SpotlightPeriod    = 10 * time.Second       // One full spot light sweep
	DefaultFrameBudget = 16 * time.Millisecond  // Frame pacing when VSync is unavailable
)

// Default window size used outside of fullscreen.
const (
	DefaultWindowWidth  int32 = 1280
	DefaultWindowHeight int32 = 720
)
